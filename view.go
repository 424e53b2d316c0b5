package radix

// View is a live window onto a subtree: every read or write through it
// is scoped to the descendants of the node it was constructed over,
// and reflects mutations made through the trie (or other views) after
// construction, not a snapshot. It has no single element type of its
// own — Keys, Values, Entries and Nodes are simply different
// projections of the same underlying walk, selected by whichever the
// caller asks for, the way a Java Set<K> and a Set<Entry<K,V>> are
// really just two faces of the same backing map.
type View[S any, T any] struct {
	trie            *Trie[S, T]
	root            *Node[S, T]
	includeAllNodes bool
}

func (t *Trie[S, T]) viewFromRoot(root *Node[S, T], includeAllNodes bool) *View[S, T] {
	return &View[S, T]{trie: t, root: root, includeAllNodes: includeAllNodes}
}

// viewConfig holds the optional parameters shared by every view
// constructor: a prefix scoping the view to a subtree (instead of the
// whole trie), and the match mode used to resolve that prefix into a
// subtree root. Both are optional in spec.md §6 ("keySet() ... live
// full-trie view" vs "keySet(q [,m]) ... live subtree view"); ViewOption
// is how that Java-style overload is expressed as a single Go signature
// instead of two differently-named methods.
type viewConfig[S any] struct {
	hasPrefix bool
	prefix    S
	mode      MatchMode
}

// ViewOption configures a view constructor (KeySet, Values, EntrySet,
// NodeSet, NodeSetAll). See WithPrefix and WithMode.
type ViewOption[S any] func(*viewConfig[S])

// WithPrefix scopes the constructed view to the subtree reachable under
// prefix instead of the whole trie. Omitting it entirely (no
// ViewOption at all) yields the live full-trie view spec.md §6's
// zero-argument overload describes.
func WithPrefix[S any](prefix S) ViewOption[S] {
	return func(c *viewConfig[S]) {
		c.hasPrefix = true
		c.prefix = prefix
	}
}

// WithMode overrides the match mode used to resolve a WithPrefix prefix
// into a subtree root. It has no effect without WithPrefix. Subtree is
// used when omitted, matching spec.md §6's default for prefix-scoped
// views.
func WithMode[S any](mode MatchMode) ViewOption[S] {
	return func(c *viewConfig[S]) { c.mode = mode }
}

// KeySet returns a view over every stored key, or, with WithPrefix,
// over only those keys reachable as an extension of that prefix
// (SUBTREE semantics by default, or WithMode's mode if given).
func (t *Trie[S, T]) KeySet(opts ...ViewOption[S]) *View[S, T] { return t.scopedView(false, opts) }

// Values returns a view over every stored value, scoped like KeySet.
func (t *Trie[S, T]) Values(opts ...ViewOption[S]) *View[S, T] { return t.scopedView(false, opts) }

// EntrySet returns a view over every stored key/value pair, scoped
// like KeySet.
func (t *Trie[S, T]) EntrySet(opts ...ViewOption[S]) *View[S, T] { return t.scopedView(false, opts) }

// NodeSet returns a view over every valued node, scoped like KeySet.
func (t *Trie[S, T]) NodeSet(opts ...ViewOption[S]) *View[S, T] { return t.scopedView(false, opts) }

// NodeSetAll returns a view over every node in the subtree, including
// naked branches that carry no value of their own. This is the one
// projection with no direct analogue in a plain map-like container: it
// exposes the trie's own branching structure for diagnostics and
// debugging (see Trie.Dump).
func (t *Trie[S, T]) NodeSetAll(opts ...ViewOption[S]) *View[S, T] { return t.scopedView(true, opts) }

func (t *Trie[S, T]) scopedView(includeAllNodes bool, opts []ViewOption[S]) *View[S, T] {
	cfg := viewConfig[S]{mode: Subtree}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasPrefix {
		return t.viewFromRoot(t.root, includeAllNodes)
	}
	n, ok := search[S, T](t.seqr, t.root, cfg.prefix, cfg.mode)
	if !ok {
		return t.viewFromRoot(nil, includeAllNodes)
	}
	return t.viewFromRoot(n, includeAllNodes)
}

// Size returns the number of valued descendants in the view's scope.
// An empty (missing-prefix) view reports 0.
func (v *View[S, T]) Size() int {
	if v.root == nil {
		return 0
	}
	return v.root.size
}

// Contains reports whether key names an exact valued node within this
// view's scope. It delegates to the same search routine as Trie.Get,
// rooted at the view instead of at the trie root.
func (v *View[S, T]) Contains(key S) bool {
	if v.root == nil {
		return false
	}
	n, ok := search[S, T](v.trie.seqr, v.root, key, Exact)
	return ok && n.hasValue()
}

// Remove deletes the exact key within this view's scope, returning its
// prior value if present.
func (v *View[S, T]) Remove(key S) (T, bool) {
	if v.root == nil {
		var zero T
		return zero, false
	}
	n, ok := search[S, T](v.trie.seqr, v.root, key, Exact)
	if !ok {
		var zero T
		return zero, false
	}
	old := removeAt[S, T](v.trie.seqr, n)
	if old == nil {
		var zero T
		return zero, false
	}
	return *old, true
}

func (v *View[S, T]) newIter() *positionIter[S, T] {
	return newPositionIter[S, T](v.trie.seqr, v.root, v.includeAllNodes)
}

// Keys returns an iterator over this view's keys in position order.
func (v *View[S, T]) Keys() *KeyIter[S, T] { return &KeyIter[S, T]{it: v.newIter()} }

// Values returns an iterator over this view's values in position
// order.
func (v *View[S, T]) Values() *ValueIter[S, T] { return &ValueIter[S, T]{it: v.newIter()} }

// Entries returns an iterator over this view's key/value pairs in
// position order.
func (v *View[S, T]) Entries() *EntryIter[S, T] { return &EntryIter[S, T]{it: v.newIter()} }

// Nodes returns an iterator over this view's nodes in position order.
// If the view was built with NodeSetAll, naked branches are included;
// otherwise only valued nodes are yielded.
func (v *View[S, T]) Nodes() *NodeIter[S, T] { return &NodeIter[S, T]{it: v.newIter()} }

// ReverseNodes returns an iterator over this view's nodes in the exact
// reverse of the order Nodes() would produce them.
func (v *View[S, T]) ReverseNodes() *ReverseIterator[S, T] {
	return &ReverseIterator[S, T]{it: newReversePositionIter[S, T](v.trie.seqr, v.root, v.includeAllNodes)}
}
