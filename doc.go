// Package radix implements a generic compact (radix) trie: an associative
// mapping from variable-length sequences to arbitrary values.
//
// The trie is generic in two independent dimensions. The sequence type
// (what a key is made of) is supplied through a Sequencer, an external
// capability that knows how to measure a sequence's length, hash one of
// its elements, and count how many leading elements two sequences share.
// The core never inspects sequence elements directly; it only ever calls
// into the Sequencer. The value type is an ordinary Go type parameter.
//
// The trie here is mutable and single-writer: Put, Remove and
// iterator-driven removal all
// mutate nodes in place, radix-compressing edges on insert (splitting a
// shared edge when two keys diverge partway through it) and decompressing
// them on delete (absorbing a node's sole remaining child back into it).
// There is no copy-on-write, no transactions, and no concurrent-write
// safety; callers needing that must add their own synchronization.
//
// Four match modes share a single search routine: EXACT requires the
// queried sequence to equal a stored key verbatim; STARTS_WITH, PARTIAL
// and SUBTREE all accept a hit whenever the query is a prefix of some
// stored key, including when the query ends partway through a compressed
// edge, and resolve it to the same node. See Trie.Get,
// Trie.Has and the MatchMode constants for the precise contract of each.
//
// See the ready-made Sequencer implementations in the sequencer
// subpackage for common key shapes (byte slices, strings, integer
// slices, and opaque token slices).
package radix
