package explorer

import "strings"

// MatchField says which part of a node a search match landed on.
type MatchField int

const (
	MatchKey MatchField = iota
	MatchValue
)

func (f MatchField) String() string {
	if f == MatchValue {
		return "value"
	}
	return "key"
}

// SearchMatch is one hit of an active search. A node whose key and value
// both contain the query yields two matches, key first, mirroring how a UI
// highlights the two fields independently.
type SearchMatch struct {
	Node  *Node
	Field MatchField
}

// Search scans every node, visible or not, for case-insensitive substring
// matches of query against node keys and, for scalar nodes, their displayed
// values. Matches come back in pre-order, so the result order is stable and
// deterministic for a given document. The first match becomes focused.
//
// Searching never alters collapse state; a match hidden under a collapsed
// ancestor stays hidden until RevealFocusedMatch or an explicit expand.
// Re-submitting the identical query is a silent no-op; any other query, an
// empty one included, updates search state and notifies store listeners
// exactly once.
func (s *Store) Search(query string) {
	if query == s.searchQuery {
		return
	}
	s.searchQuery = query
	s.matches = s.matches[:0]
	s.focused = -1

	if query != "" {
		needle := strings.ToLower(query)
		for _, n := range s.nodes {
			if strings.Contains(strings.ToLower(n.key), needle) {
				s.matches = append(s.matches, SearchMatch{Node: n, Field: MatchKey})
			}
			if !n.IsRoot() && strings.Contains(strings.ToLower(n.value.Display()), needle) {
				s.matches = append(s.matches, SearchMatch{Node: n, Field: MatchValue})
			}
		}
		if len(s.matches) > 0 {
			s.focused = 0
		}
	}

	s.listeners.notify()
}

// ClearSearch drops the active query and all matches. No-op when no search
// is active.
func (s *Store) ClearSearch() {
	s.Search("")
}

// SearchQuery returns the active query, "" when no search is active.
func (s *Store) SearchQuery() string { return s.searchQuery }

// Matches returns the current matches in pre-order. The slice is owned by
// the store and must not be modified.
func (s *Store) Matches() []SearchMatch { return s.matches }

// FocusedMatchIndex returns the index of the focused match, -1 when there is
// none.
func (s *Store) FocusedMatchIndex() int { return s.focused }

// FocusedMatch returns the focused match, or nil when there is none.
func (s *Store) FocusedMatch() *SearchMatch {
	if s.focused < 0 || s.focused >= len(s.matches) {
		return nil
	}
	return &s.matches[s.focused]
}

// FocusNextMatch moves focus to the next match, wrapping past the last one.
// Notifies store listeners unless focus cannot move (zero or one match).
func (s *Store) FocusNextMatch() {
	s.moveFocus(1)
}

// FocusPreviousMatch moves focus to the previous match, wrapping before the
// first one.
func (s *Store) FocusPreviousMatch() {
	s.moveFocus(-1)
}

func (s *Store) moveFocus(delta int) {
	if len(s.matches) == 0 {
		return
	}
	next := (s.focused + delta + len(s.matches)) % len(s.matches)
	if next == s.focused {
		return
	}
	s.focused = next
	s.listeners.notify()
}

// RevealFocusedMatch expands every collapsed ancestor of the focused match
// so the matched node becomes visible. This is the explicit opt-in for
// navigate-to-hidden-match; Search and the focus moves never do it
// implicitly. One display recomputation and one store notification however
// many ancestors open; silent no-op when the match is already visible or no
// match is focused.
func (s *Store) RevealFocusedMatch() {
	match := s.FocusedMatch()
	if match == nil {
		return
	}
	changed := false
	for p := match.Node.parent; p != nil; p = p.parent {
		if p.setCollapsed(false) {
			changed = true
		}
	}
	if !changed {
		return
	}
	s.rebuildDisplay()
	s.listeners.notify()
}
