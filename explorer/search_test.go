package explorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/jsontree/document"
	"github.com/grovetools/jsontree/explorer"
	"github.com/grovetools/jsontree/testutil"
)

func TestSearchMatchesKeysCaseInsensitive(t *testing.T) {
	s := buildSample(t, false)

	s.Search("DEEPFIELD")

	matches := s.Matches()
	require.Len(t, matches, 4) // two inner classes per root, one deepField each
	for _, m := range matches {
		assert.Equal(t, explorer.MatchKey, m.Field)
		assert.Equal(t, "deepField", m.Node.Name())
	}

	// Result order is pre-order, so deterministic across runs.
	assert.Equal(t, "firstClass.innerClass.deepClass.deepField", matches[0].Node.Key())
	assert.Equal(t, "secondClass.otherInnerClass.deepClass.deepField", matches[3].Node.Key())
	assert.Equal(t, 0, s.FocusedMatchIndex())
}

func TestSearchMatchesValues(t *testing.T) {
	doc := document.Object().
		Set("a", document.String("needle in here")).
		Set("b", document.Number(42)).
		Set("c", document.Object().Set("d", document.String("no match")))
	s := explorer.NewStore()
	s.BuildNodes(doc, false)

	s.Search("needle")
	require.Len(t, s.Matches(), 1)
	assert.Equal(t, "a", s.Matches()[0].Node.Key())
	assert.Equal(t, explorer.MatchValue, s.Matches()[0].Field)

	s.Search("42")
	require.Len(t, s.Matches(), 1)
	assert.Equal(t, "b", s.Matches()[0].Node.Key())
}

func TestSearchKeyAndValueMatchSeparately(t *testing.T) {
	doc := document.Object().Set("color", document.String("colorful"))
	s := explorer.NewStore()
	s.BuildNodes(doc, false)

	s.Search("color")

	matches := s.Matches()
	require.Len(t, matches, 2)
	assert.Same(t, matches[0].Node, matches[1].Node)
	assert.Equal(t, explorer.MatchKey, matches[0].Field)
	assert.Equal(t, explorer.MatchValue, matches[1].Field)
}

func TestSearchNotifiesOncePerQuery(t *testing.T) {
	s := buildSample(t, false)

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.Search("inner")
	assert.Equal(t, 1, counter.N)

	// Identical query again: silent no-op.
	s.Search("inner")
	assert.Equal(t, 1, counter.N)

	s.Search("")
	assert.Equal(t, 2, counter.N)
	assert.Empty(t, s.Matches())
	assert.Equal(t, -1, s.FocusedMatchIndex())
}

func TestSearchWithNoResults(t *testing.T) {
	s := buildSample(t, false)
	s.Search("nothing matches this")

	assert.Empty(t, s.Matches())
	assert.Equal(t, -1, s.FocusedMatchIndex())
	assert.Nil(t, s.FocusedMatch())

	var counter testutil.Counter
	s.AddListener(counter.Fn())
	s.FocusNextMatch()
	s.FocusPreviousMatch()
	assert.Zero(t, counter.N)
}

func TestFocusNavigationWraps(t *testing.T) {
	s := buildSample(t, false)
	s.Search("deepField")
	require.Len(t, s.Matches(), 4)

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.FocusNextMatch()
	assert.Equal(t, 1, s.FocusedMatchIndex())

	s.FocusPreviousMatch()
	s.FocusPreviousMatch()
	assert.Equal(t, 3, s.FocusedMatchIndex())

	s.FocusNextMatch()
	assert.Equal(t, 0, s.FocusedMatchIndex())
	assert.Equal(t, 4, counter.N)
}

func TestFocusNavigationSingleMatchIsNoOp(t *testing.T) {
	doc := document.Object().Set("only", document.Null())
	s := explorer.NewStore()
	s.BuildNodes(doc, false)
	s.Search("only")
	require.Len(t, s.Matches(), 1)

	var counter testutil.Counter
	s.AddListener(counter.Fn())
	s.FocusNextMatch()
	s.FocusPreviousMatch()

	assert.Equal(t, 0, s.FocusedMatchIndex())
	assert.Zero(t, counter.N)
}

func TestSearchDoesNotAlterCollapseState(t *testing.T) {
	s := buildSample(t, true)
	before := testutil.DisplayKeys(s)

	s.Search("deepField")

	assert.Equal(t, before, testutil.DisplayKeys(s))
	assert.True(t, s.AreAllCollapsed())
}

func TestRevealFocusedMatch(t *testing.T) {
	s := buildSample(t, true)
	s.Search("deepField")
	require.NotNil(t, s.FocusedMatch())

	var counter testutil.Counter
	s.AddListener(counter.Fn())

	s.RevealFocusedMatch()

	// Ancestors along the match path opened; unrelated containers did not.
	keys := testutil.DisplayKeys(s)
	assert.Contains(t, keys, "firstClass.innerClass.deepClass.deepField")
	assert.NotContains(t, keys, "firstClass.otherInnerClass.innerField")
	assert.True(t, testutil.FirstNodeWithKey(t, s, "firstClass.list").IsCollapsed())
	assert.Equal(t, 1, counter.N)

	// Match already visible: silent no-op.
	s.RevealFocusedMatch()
	assert.Equal(t, 1, counter.N)
}

func TestRevealWithoutFocusIsNoOp(t *testing.T) {
	s := buildSample(t, true)

	var counter testutil.Counter
	s.AddListener(counter.Fn())
	s.RevealFocusedMatch()
	assert.Zero(t, counter.N)
}

func TestBuildNodesClearsSearch(t *testing.T) {
	s := buildSample(t, false)
	s.Search("deepField")
	require.NotEmpty(t, s.Matches())

	s.BuildNodes(testutil.SampleDocument(), false)

	assert.Equal(t, "", s.SearchQuery())
	assert.Empty(t, s.Matches())
	assert.Equal(t, -1, s.FocusedMatchIndex())
}
