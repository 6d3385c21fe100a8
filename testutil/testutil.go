// Package testutil holds helpers shared by the explorer and TUI tests:
// key-based node lookup with deterministic first/last semantics, a listener
// call counter, and a reference document with a known node layout.
package testutil

import (
	"testing"

	"github.com/grovetools/jsontree/document"
	"github.com/grovetools/jsontree/explorer"
)

// FirstNodeWithKey returns the first node, in pre-order, whose full key
// equals key. Keys may repeat across a document; "first" resolves the tie.
// Fails the test when no node matches.
func FirstNodeWithKey(t *testing.T, s *explorer.Store, key string) *explorer.Node {
	t.Helper()
	for _, n := range s.Nodes() {
		if n.Key() == key {
			return n
		}
	}
	t.Fatalf("no node with key %q", key)
	return nil
}

// LastNodeWithKey returns the last node, in pre-order, whose full key equals
// key. Fails the test when no node matches.
func LastNodeWithKey(t *testing.T, s *explorer.Store, key string) *explorer.Node {
	t.Helper()
	var found *explorer.Node
	for _, n := range s.Nodes() {
		if n.Key() == key {
			found = n
		}
	}
	if found == nil {
		t.Fatalf("no node with key %q", key)
	}
	return found
}

// Counter counts listener invocations. Register Fn on a node or store and
// assert on N.
type Counter struct {
	N int
}

// Fn returns the callback to register as a listener.
func (c *Counter) Fn() func() {
	return func() { c.N++ }
}

// DisplayKeys returns the keys of the store's current display list, in order.
func DisplayKeys(s *explorer.Store) []string {
	nodes := s.DisplayNodes()
	keys := make([]string, len(nodes))
	for i, n := range nodes {
		keys[i] = n.Key()
	}
	return keys
}

// SampleDocument builds the reference document used across the tests: two
// top-level objects of 24 nodes each (the container itself, 3 scalar fields,
// 2 nested objects of 8 nodes, and a 3-element array), 48 nodes total.
func SampleDocument() *document.Value {
	return document.Object().
		Set("firstClass", sampleClass("firstClass")).
		Set("secondClass", sampleClass("secondClass"))
}

func sampleClass(name string) *document.Value {
	return document.Object().
		Set(name+"Field", document.String(name+" value")).
		Set("intField", document.Number(42)).
		Set("boolField", document.Bool(true)).
		Set("innerClass", sampleInnerClass(name+".innerClass")).
		Set("otherInnerClass", sampleInnerClass(name+".otherInnerClass")).
		Set("list", document.Array(
			document.Number(0),
			document.Number(1),
			document.Number(2),
		))
}

// sampleInnerClass has 8 nodes: itself, 3 scalars, and a deep object of 4.
func sampleInnerClass(label string) *document.Value {
	return document.Object().
		Set("innerField", document.String(label)).
		Set("innerInt", document.Number(7)).
		Set("innerNull", document.Null()).
		Set("deepClass", document.Object().
			Set("deepField", document.String("deep "+label)).
			Set("deepInt", document.Number(-1)).
			Set("deepBool", document.Bool(false)))
}
