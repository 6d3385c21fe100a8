package explorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/jsontree/document"
	"github.com/grovetools/jsontree/errors"
	"github.com/grovetools/jsontree/explorer"
	"github.com/grovetools/jsontree/testutil"
)

func TestBuildNodesFullyExpanded(t *testing.T) {
	s := buildSample(t, false)

	require.Len(t, s.Nodes(), 48)
	// Nothing collapsed: the display list is the full pre-order sequence.
	assert.Equal(t, s.Nodes(), s.DisplayNodes())
	assert.Equal(t, "firstClass", s.DisplayNodes()[0].Key())
	assert.Equal(t, "secondClass", s.DisplayNodes()[24].Key())
}

func TestBuildNodesAllCollapsed(t *testing.T) {
	s := buildSample(t, true)

	require.Len(t, s.Nodes(), 48)
	assert.Equal(t, []string{"firstClass", "secondClass"}, testutil.DisplayKeys(s))
}

func TestBuildNodesNotifiesOnce(t *testing.T) {
	s := explorer.NewStore()
	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.BuildNodes(testutil.SampleDocument(), false)
	assert.Equal(t, 1, counter.N)
}

func TestBuildNodesKeepsStoreListeners(t *testing.T) {
	s := explorer.NewStore()
	var storeCounter, nodeCounter testutil.Counter
	s.AddListener(storeCounter.Fn())

	s.BuildNodes(testutil.SampleDocument(), false)
	old := testutil.FirstNodeWithKey(t, s, "firstClass")
	old.AddListener(nodeCounter.Fn())

	// A rebuild replaces every node; listeners on discarded nodes are gone
	// with them, store listeners survive.
	s.BuildNodes(testutil.SampleDocument(), false)
	assert.Equal(t, 2, storeCounter.N)

	fresh := testutil.FirstNodeWithKey(t, s, "firstClass")
	assert.NotSame(t, old, fresh)
	s.CollapseNode(fresh)
	assert.Zero(t, nodeCounter.N)
}

func TestBuildNodesEmptyAndScalarDocuments(t *testing.T) {
	s := explorer.NewStore()

	s.BuildNodes(nil, false)
	assert.Empty(t, s.Nodes())
	assert.Empty(t, s.DisplayNodes())

	s.BuildNodes(document.String("just a scalar"), false)
	assert.Empty(t, s.Nodes())

	s.BuildNodes(document.Object(), false)
	assert.Empty(t, s.Nodes())
}

func TestBuildNodesArrayDocument(t *testing.T) {
	doc := document.Array(
		document.String("a"),
		document.Object().Set("x", document.Number(1)),
	)
	s := explorer.NewStore()
	s.BuildNodes(doc, false)

	assert.Equal(t, []string{"0", "1", "1.x"}, testutil.DisplayKeys(s))
	assert.True(t, s.Nodes()[1].IsClass())
}

func TestCollapseNodeHidesSubtree(t *testing.T) {
	s := buildSample(t, false)
	first := s.DisplayNodes()[0]

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.CollapseNode(first)

	display := s.DisplayNodes()
	require.Len(t, display, 25)
	assert.Equal(t, "firstClass", display[0].Key())
	assert.Equal(t, "secondClass", display[1].Key())
	assert.Equal(t, 1, counter.N)

	// The second root's subtree is untouched and fully visible.
	assert.Equal(t, "secondClass.secondClassField", display[2].Key())
	assert.False(t, testutil.FirstNodeWithKey(t, s, "secondClass.innerClass").IsCollapsed())
}

func TestCollapseNodeIdempotent(t *testing.T) {
	s := buildSample(t, false)
	first := s.DisplayNodes()[0]
	s.CollapseNode(first)

	var storeCounter, nodeCounter testutil.Counter
	s.AddListener(storeCounter.Fn())
	first.AddListener(nodeCounter.Fn())

	s.CollapseNode(first)

	assert.Len(t, s.DisplayNodes(), 25)
	assert.Zero(t, storeCounter.N)
	assert.Zero(t, nodeCounter.N)
}

func TestCollapseNodeOnLeafIsNoOp(t *testing.T) {
	s := buildSample(t, false)
	leaf := testutil.FirstNodeWithKey(t, s, "firstClass.intField")

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.CollapseNode(leaf)
	s.CollapseNode(nil)

	assert.Len(t, s.DisplayNodes(), 48)
	assert.Zero(t, counter.N)
}

func TestExpandNodeOnCollapsedTree(t *testing.T) {
	s := buildSample(t, true)
	first := s.DisplayNodes()[0]

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.ExpandNode(first)

	// Only the first root's direct structure opens; nested containers were
	// built collapsed and stay that way.
	assert.Equal(t, []string{
		"firstClass",
		"firstClass.firstClassField",
		"firstClass.intField",
		"firstClass.boolField",
		"firstClass.innerClass",
		"firstClass.otherInnerClass",
		"firstClass.list",
		"secondClass",
	}, testutil.DisplayKeys(s))
	assert.Equal(t, 1, counter.N)
}

func TestExpandNodeIdempotent(t *testing.T) {
	s := buildSample(t, false)
	first := s.DisplayNodes()[0]

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.ExpandNode(first) // already expanded
	assert.Len(t, s.DisplayNodes(), 48)
	assert.Zero(t, counter.N)
}

func TestCollapseExpandRoundTrip(t *testing.T) {
	s := buildSample(t, false)
	before := testutil.DisplayKeys(s)
	first := s.DisplayNodes()[0]

	s.CollapseNode(first)
	s.ExpandNode(first)

	assert.Equal(t, before, testutil.DisplayKeys(s))
	assert.True(t, s.AreAllExpanded())
}

func TestExpandRootPreservesDescendantCollapseState(t *testing.T) {
	s := buildSample(t, false)
	root := testutil.FirstNodeWithKey(t, s, "firstClass")
	inner := testutil.FirstNodeWithKey(t, s, "firstClass.innerClass")

	s.CollapseNode(inner)
	s.CollapseNode(root)
	s.ExpandNode(root)

	// The independently collapsed child reappears collapsed, its subtree
	// still hidden; its sibling stayed expanded.
	assert.True(t, inner.IsCollapsed())
	keys := testutil.DisplayKeys(s)
	assert.Contains(t, keys, "firstClass.innerClass")
	assert.NotContains(t, keys, "firstClass.innerClass.innerField")
	assert.Contains(t, keys, "firstClass.otherInnerClass.innerField")
	assert.Len(t, keys, 41)
}

func TestCollapseHiddenNodeLeavesDisplayIntact(t *testing.T) {
	s := buildSample(t, false)
	root := testutil.FirstNodeWithKey(t, s, "firstClass")
	inner := testutil.FirstNodeWithKey(t, s, "firstClass.innerClass")

	s.CollapseNode(root)
	before := testutil.DisplayKeys(s)

	s.CollapseNode(inner)

	assert.True(t, inner.IsCollapsed())
	assert.Equal(t, before, testutil.DisplayKeys(s))

	// Expanding the root reveals the hidden collapse.
	s.ExpandNode(root)
	assert.NotContains(t, testutil.DisplayKeys(s), "firstClass.innerClass.innerField")
}

func TestCollapseAllAndExpandAll(t *testing.T) {
	s := buildSample(t, false)

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.CollapseAll()
	assert.Equal(t, []string{"firstClass", "secondClass"}, testutil.DisplayKeys(s))
	assert.True(t, s.AreAllCollapsed())
	assert.False(t, s.AreAllExpanded())
	assert.Equal(t, 1, counter.N)

	// Every container already collapsed: nothing changes, nobody notified.
	s.CollapseAll()
	assert.Equal(t, 1, counter.N)

	s.ExpandAll()
	assert.Len(t, s.DisplayNodes(), 48)
	assert.True(t, s.AreAllExpanded())
	assert.Equal(t, 2, counter.N)
}

func TestPredicatesOnMixedStates(t *testing.T) {
	s := buildSample(t, false)
	s.CollapseNode(testutil.FirstNodeWithKey(t, s, "firstClass"))

	assert.False(t, s.AreAllCollapsed())
	assert.False(t, s.AreAllExpanded())
}

func TestPredicatesSeeNodesHiddenUnderCollapsedAncestors(t *testing.T) {
	s := buildSample(t, false)
	// Collapse every top-level root by hand; nested containers stay expanded,
	// so the whole set is not "all collapsed" even though the display list
	// looks like it is.
	s.CollapseNode(testutil.FirstNodeWithKey(t, s, "firstClass"))
	s.CollapseNode(testutil.FirstNodeWithKey(t, s, "secondClass"))

	assert.Equal(t, []string{"firstClass", "secondClass"}, testutil.DisplayKeys(s))
	assert.False(t, s.AreAllCollapsed())
}

func TestPredicatesOnEmptyStore(t *testing.T) {
	s := explorer.NewStore()
	assert.False(t, s.AreAllCollapsed())
	assert.False(t, s.AreAllExpanded())
}

func TestSetCollapsedBatch(t *testing.T) {
	s := buildSample(t, false)
	inner := testutil.FirstNodeWithKey(t, s, "firstClass.innerClass")
	other := testutil.FirstNodeWithKey(t, s, "firstClass.otherInnerClass")
	leaf := testutil.FirstNodeWithKey(t, s, "firstClass.intField")

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.SetCollapsed([]*explorer.Node{inner, other, leaf, nil}, true)

	assert.True(t, inner.IsCollapsed())
	assert.True(t, other.IsCollapsed())
	assert.Equal(t, 1, counter.N)
	assert.Len(t, s.DisplayNodes(), 48-14)

	// Entire batch already in state: silent no-op.
	s.SetCollapsed([]*explorer.Node{inner, other}, true)
	assert.Equal(t, 1, counter.N)
}

func TestFindNode(t *testing.T) {
	s := buildSample(t, false)

	n, err := s.FindNode("firstClass.innerClass.deepClass.deepField")
	require.NoError(t, err)
	assert.Equal(t, "deepField", n.Name())

	// Duplicate keys resolve to the pre-order first occurrence.
	first, err := s.FindNode("firstClass.intField")
	require.NoError(t, err)
	assert.Same(t, testutil.FirstNodeWithKey(t, s, "firstClass.intField"), first)

	_, err = s.FindNode("no.such.key")
	assert.True(t, errors.HasCode(err, errors.ErrCodeNodeNotFound))
}
