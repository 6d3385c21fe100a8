// Package explorer holds the tree state behind an interactive JSON viewer:
// a flat, pre-ordered node set built from a decoded document, the derived
// list of currently visible nodes, and the expand/collapse/search operations
// that keep the two consistent. Rendering is someone else's job; a UI layer
// consumes DisplayNodes and calls back into the store on user gestures.
package explorer

import (
	"strings"

	"github.com/grovetools/jsontree/document"
)

// Node is one entry in the tree: a single key/value pair anywhere in the
// document, containers included. Identity and hierarchy are fixed at build
// time; only the collapse and highlight flags mutate afterwards. Nodes are
// compared by reference identity since keys may repeat across the document.
type Node struct {
	key           string
	value         *document.Value
	depth         int
	parent        *Node
	childrenCount int

	// pos is the node's index in the store's pre-order node slice, span the
	// size of its subtree including itself. Descendants of a node occupy
	// nodes[pos+1 : pos+span].
	pos  int
	span int

	collapsed   bool
	highlighted bool
	listeners   listenerList
}

// Key returns the fully-qualified dotted path of the node, e.g.
// "config.servers.0.host". Top-level keys carry no prefix. Keys are not
// globally unique; duplicate document keys yield duplicate node keys.
func (n *Node) Key() string { return n.key }

// Name returns the last segment of the node's key, the label a row renders.
func (n *Node) Name() string {
	if i := strings.LastIndex(n.key, "."); i >= 0 {
		return n.key[i+1:]
	}
	return n.key
}

// Value returns the decoded value this node represents. For container nodes
// this is the nested structure itself.
func (n *Node) Value() *document.Value { return n.value }

// TreeDepth returns the nesting depth, 0 for top-level entries.
func (n *Node) TreeDepth() int { return n.depth }

// Parent returns the owning container node, or nil for top-level entries.
func (n *Node) Parent() *Node { return n.parent }

// IsClass reports whether the node's value is an object.
func (n *Node) IsClass() bool { return n.value.Kind() == document.KindObject }

// IsArray reports whether the node's value is an array.
func (n *Node) IsArray() bool { return n.value.Kind() == document.KindArray }

// IsRoot reports whether the node is a container (object or array) and can
// therefore be expanded or collapsed.
func (n *Node) IsRoot() bool { return n.value.IsContainer() }

// ChildrenCount returns the number of direct children: the key count for
// objects, the element count for arrays, 0 for scalars.
func (n *Node) ChildrenCount() int { return n.childrenCount }

// IsCollapsed reports the node's own collapse state. A node keeps this state
// even while hidden under a collapsed ancestor.
func (n *Node) IsCollapsed() bool { return n.collapsed }

// IsHighlighted reports the hover highlight state.
func (n *Node) IsHighlighted() bool { return n.highlighted }

// Collapse marks a container node collapsed and notifies the node's own
// listeners. Calling it on a leaf or an already collapsed node does nothing
// and notifies nobody. Descendant collapse states are untouched.
func (n *Node) Collapse() {
	n.setCollapsed(true)
}

// Expand marks a container node expanded, symmetric to Collapse.
func (n *Node) Expand() {
	n.setCollapsed(false)
}

func (n *Node) setCollapsed(collapsed bool) bool {
	if !n.IsRoot() || n.collapsed == collapsed {
		return false
	}
	n.collapsed = collapsed
	n.listeners.notify()
	return true
}

// Highlight sets the hover highlight flag and notifies the node's listeners.
// Purely presentational; re-asserting the current state is a silent no-op.
func (n *Node) Highlight(highlighted bool) {
	if n.highlighted == highlighted {
		return
	}
	n.highlighted = highlighted
	n.listeners.notify()
}

// AddListener subscribes to changes of this node's mutable attributes
// (collapse and highlight state). The returned ID removes the subscription.
// Node listeners are independent of store listeners and are discarded,
// together with the node, on the next store build.
func (n *Node) AddListener(fn func()) ListenerID {
	return n.listeners.add(fn)
}

// RemoveListener removes a node listener by ID.
func (n *Node) RemoveListener(id ListenerID) {
	n.listeners.remove(id)
}
