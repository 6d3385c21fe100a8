package explorer

import (
	"sort"

	"github.com/grovetools/jsontree/document"
	"github.com/grovetools/jsontree/errors"
)

// Store owns the full node set of one document and the derived display list.
// The display list is always the depth-first pre-order node sequence minus
// every node hidden under a collapsed ancestor; a collapsed container itself
// stays visible, only its descendants disappear.
//
// A store is confined to a single logical owner (in practice the UI event
// loop); it does no locking of its own. Every mutating operation notifies
// store listeners at most once, after the display list is fully recomputed,
// and never when nothing observable changed.
type Store struct {
	nodes   []*Node // all nodes, depth-first pre-order
	display []*Node // visible subsequence of nodes

	listeners listenerList

	searchQuery string
	matches     []SearchMatch
	focused     int
}

// NewStore creates an empty store. Call BuildNodes to populate it.
func NewStore() *Store {
	return &Store{focused: -1}
}

// BuildNodes discards all prior nodes (and any listeners registered on them,
// though not the store's own listeners) and rebuilds the node set from a
// decoded document. Each object member and array element becomes one node, in
// document order; container values recurse with depth+1 and a dot-joined key.
// Every container starts out with the given collapse state. Active search
// state is cleared since it referenced the old nodes. Listeners are notified
// exactly once, after the display list is computed.
//
// The walk is a single pass over the document, linear in total node count.
// A scalar document yields an empty node set: there is nothing to explore.
func (s *Store) BuildNodes(doc *document.Value, allCollapsed bool) {
	s.nodes = nil
	if doc != nil {
		s.nodes = make([]*Node, 0, doc.Len())
		s.walk(doc, "", 0, nil, allCollapsed)
	}

	s.searchQuery = ""
	s.matches = nil
	s.focused = -1

	s.rebuildDisplay()
	s.listeners.notify()
}

func (s *Store) walk(container *document.Value, prefix string, depth int, parent *Node, allCollapsed bool) {
	container.Each(func(key string, value *document.Value) {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		n := &Node{
			key:           fullKey,
			value:         value,
			depth:         depth,
			parent:        parent,
			childrenCount: value.Len(),
			pos:           len(s.nodes),
			collapsed:     allCollapsed && value.IsContainer(),
		}
		s.nodes = append(s.nodes, n)
		if value.IsContainer() {
			s.walk(value, fullKey, depth+1, n, allCollapsed)
		}
		n.span = len(s.nodes) - n.pos
	})
}

// Nodes returns every node in depth-first pre-order, visible or not. The
// slice is owned by the store and must not be modified.
func (s *Store) Nodes() []*Node { return s.nodes }

// FindNode returns the first node with the given dotted key in pre-order.
// Keys are not unique, so callers needing a later duplicate walk Nodes
// themselves.
func (s *Store) FindNode(key string) (*Node, error) {
	for _, n := range s.nodes {
		if n.key == key {
			return n, nil
		}
	}
	return nil, errors.NodeNotFound(key)
}

// DisplayNodes returns the ordered sequence a UI should render right now.
// The slice is owned by the store and must not be modified.
func (s *Store) DisplayNodes() []*Node { return s.display }

// CollapseNode collapses one container node and splices its visible
// descendants out of the display list. Descendants keep their own collapse
// states. A nil, leaf, or already collapsed node is a silent no-op: no state
// change, no notification. Otherwise the node's own listeners fire (via its
// Collapse) and store listeners fire exactly once.
func (s *Store) CollapseNode(n *Node) {
	if n == nil || !n.IsRoot() || n.collapsed {
		return
	}
	n.Collapse()

	// A node hidden under a collapsed ancestor has no visible descendants to
	// splice out; its state change alone is the whole operation.
	di := s.displayIndex(n)
	if di >= len(s.display) || s.display[di] != n {
		s.listeners.notify()
		return
	}

	// Descendants of n are contiguous in the display list right after n.
	end := di + 1
	for end < len(s.display) && s.display[end].pos < n.pos+n.span {
		end++
	}
	s.display = append(s.display[:di+1], s.display[end:]...)

	s.listeners.notify()
}

// ExpandNode expands one container node and re-inserts its descendants into
// the display list, respecting each descendant's own current collapse state:
// a previously collapsed descendant reappears, its children stay hidden.
// Silent no-op unless the node is a collapsed container.
func (s *Store) ExpandNode(n *Node) {
	if n == nil || !n.IsRoot() || !n.collapsed {
		return
	}
	n.Expand()

	di := s.displayIndex(n)
	if di >= len(s.display) || s.display[di] != n {
		s.listeners.notify()
		return
	}

	visible := s.visibleSubtree(n)
	expanded := make([]*Node, 0, len(s.display)+len(visible))
	expanded = append(expanded, s.display[:di+1]...)
	expanded = append(expanded, visible...)
	expanded = append(expanded, s.display[di+1:]...)
	s.display = expanded

	s.listeners.notify()
}

// visibleSubtree lists the descendants of n that become visible once n
// itself is expanded, skipping subtrees under collapsed descendants.
func (s *Store) visibleSubtree(n *Node) []*Node {
	visible := make([]*Node, 0, n.span-1)
	for i := n.pos + 1; i < n.pos+n.span; {
		d := s.nodes[i]
		visible = append(visible, d)
		if d.IsRoot() && d.collapsed {
			i += d.span
		} else {
			i++
		}
	}
	return visible
}

// displayIndex locates a visible node in the display list. The display list
// is ordered by pre-order position, so this is a binary search.
func (s *Store) displayIndex(n *Node) int {
	return sort.Search(len(s.display), func(i int) bool {
		return s.display[i].pos >= n.pos
	})
}

// CollapseAll collapses every container node and recomputes the display list
// in one pass. One store notification regardless of how many nodes changed;
// none at all when every container was already collapsed.
func (s *Store) CollapseAll() {
	s.setAllCollapsed(true)
}

// ExpandAll expands every container node, symmetric to CollapseAll.
func (s *Store) ExpandAll() {
	s.setAllCollapsed(false)
}

func (s *Store) setAllCollapsed(collapsed bool) {
	changed := false
	for _, n := range s.nodes {
		if n.setCollapsed(collapsed) {
			changed = true
		}
	}
	if !changed {
		return
	}
	s.rebuildDisplay()
	s.listeners.notify()
}

// SetCollapsed applies one collapse state to a batch of nodes with a single
// display recomputation and a single store notification. Leaves and nodes
// already in the requested state are skipped; an entirely no-op batch
// notifies nobody. Callers use this to restore collapse state across a
// document reload.
func (s *Store) SetCollapsed(nodes []*Node, collapsed bool) {
	changed := false
	for _, n := range nodes {
		if n != nil && n.setCollapsed(collapsed) {
			changed = true
		}
	}
	if !changed {
		return
	}
	s.rebuildDisplay()
	s.listeners.notify()
}

// AreAllCollapsed reports whether every container node, including those
// nested under other collapsed nodes, is collapsed. False for an empty node
// set and for mixed states.
func (s *Store) AreAllCollapsed() bool {
	return s.allContainersMatch(true)
}

// AreAllExpanded reports whether every container node is expanded. False for
// an empty node set and for mixed states.
func (s *Store) AreAllExpanded() bool {
	return s.allContainersMatch(false)
}

func (s *Store) allContainersMatch(collapsed bool) bool {
	if len(s.nodes) == 0 {
		return false
	}
	for _, n := range s.nodes {
		if n.IsRoot() && n.collapsed != collapsed {
			return false
		}
	}
	return true
}

// rebuildDisplay recomputes the full display list in one pass over the
// pre-ordered node set, skipping collapsed subtrees by span.
func (s *Store) rebuildDisplay() {
	display := make([]*Node, 0, len(s.nodes))
	for i := 0; i < len(s.nodes); {
		n := s.nodes[i]
		display = append(display, n)
		if n.IsRoot() && n.collapsed {
			i += n.span
		} else {
			i++
		}
	}
	s.display = display
}

// AddListener subscribes to store-level changes: any operation that alters
// the display list or the search state as a set. Per-node attribute changes
// notify through the node's own listeners instead.
func (s *Store) AddListener(fn func()) ListenerID {
	return s.listeners.add(fn)
}

// RemoveListener removes a store listener by ID.
func (s *Store) RemoveListener(id ListenerID) {
	s.listeners.remove(id)
}
