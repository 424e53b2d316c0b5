package radix

// search is the single routine driving every read API: Get, Has, and the
// view constructors all resolve to a call here. fromNode lets it double
// as the subtree-scoped search a live View needs (see view.go):
// searching from a non-root node restricts the query to sequences that
// extend that node's own edge label.
//
// The loop mirrors the insertion algorithm's four-case skeleton (see
// node.go's split and trie.go's Put) but never mutates anything.
func search[S any, T any](seqr Sequencer[S], fromNode *Node[S, T], q S, mode MatchMode) (*Node[S, T], bool) {
	l := seqr.Length(q)
	if l == 0 || !mode.valid() || l < fromNode.end {
		return nil, false
	}

	if !fromNode.isRoot() {
		m := seqr.Matches(fromNode.sequence, 0, q, 0, fromNode.end)
		if m != fromNode.end {
			return nil, false
		}
		if l == fromNode.end {
			return acceptTerminal(seqr, fromNode, q, l, mode)
		}
	}

	if fromNode.children == nil {
		return nil, false
	}
	offset := fromNode.end
	cur, ok := fromNode.children.get(seqr.Hash(q, offset))
	if !ok {
		return nil, false
	}

Loop:
	for {
		nodeLen := cur.edgeLen()
		capN := minInt(nodeLen, l-offset)
		m := seqr.Matches(cur.sequence, cur.start, q, offset, capN)
		offset += m

		switch {
		case m < capN:
			// Partial edge mismatch: the query and this edge diverge
			// before either is exhausted.
			return nil, false
		case capN < nodeLen:
			// The query is exhausted partway through this edge. Because
			// radix compression never branches inside an edge, reaching
			// this point unambiguously means the stored key this edge
			// leads to extends the query — so StartsWith, Partial and
			// Subtree all accept it; see DESIGN.md for why this differs
			// from a stricter reading of "ends inside an edge" that
			// would reserve that acceptance for Partial alone.
			if mode == Exact {
				return nil, false
			}
			return cur, true
		default:
			if offset == l {
				break Loop
			}
			// The query continues past this node but no child does, so
			// no stored key begins with the query.
			if cur.children == nil {
				return nil, false
			}
			next, ok := cur.children.get(seqr.Hash(q, offset))
			if !ok {
				return nil, false
			}
			cur = next
		}
	}

	return acceptTerminal(seqr, cur, q, l, mode)
}

// acceptTerminal applies the mode-specific acceptance rule once the
// search loop has landed on a terminal node.
func acceptTerminal[S any, T any](seqr Sequencer[S], cur *Node[S, T], q S, l int, mode MatchMode) (*Node[S, T], bool) {
	switch mode {
	case Exact:
		if !cur.hasValue() || cur.end != l {
			return nil, false
		}
		if seqr.Matches(cur.sequence, 0, q, 0, cur.end) != cur.end {
			return nil, false
		}
		return cur, true
	case StartsWith, Partial, Subtree:
		return cur, true
	default:
		return nil, false
	}
}
