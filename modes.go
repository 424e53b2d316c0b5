package radix

//go:generate go tool stringer -type=MatchMode -linecomment

// MatchMode selects how Trie.Get, Trie.Has and the view constructors
// resolve a query sequence against stored keys. All four modes share the
// same search routine (see search.go); they differ only in what they
// accept once that routine terminates.
type MatchMode int

const (
	// modeUnset is the zero value. It is never a valid argument; it exists
	// so a caller cannot accidentally match with an unspecified mode by
	// leaving a MatchMode field unset.
	modeUnset MatchMode = iota // invalid

	// Exact requires the queried sequence to equal a stored key verbatim:
	// the matched node must carry a value, its edge must end exactly
	// where the query ends, and a full re-verification of the stored
	// sequence against the query must succeed.
	Exact // EXACT

	// StartsWith accepts a hit whenever the query is a prefix of some
	// stored key. This includes the case where the query is exhausted
	// partway through a compressed edge: because radix compression never
	// branches inside an edge, reaching that point unambiguously means
	// some stored key extends the query.
	StartsWith // STARTS_WITH

	// Partial accepts exactly the queries StartsWith accepts, including a
	// query that ends inside a compressed edge, and resolves them to the
	// same node: the descendant that edge leads to.
	Partial // PARTIAL

	// Subtree behaves like StartsWith; it exists as its own mode because
	// callers using it to obtain a live subtree view (KeySet, Values,
	// EntrySet, NodeSet) read differently than callers probing for a
	// single prefix hit, even though the matching rule is identical.
	Subtree // SUBTREE
)

func (m MatchMode) valid() bool {
	return m == Exact || m == StartsWith || m == Partial || m == Subtree
}
