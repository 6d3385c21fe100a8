package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/jsontree/document"
)

func TestObjectKeepsInsertionOrder(t *testing.T) {
	obj := document.Object().
		Set("zebra", document.Number(1)).
		Set("apple", document.Number(2)).
		Set("mango", document.Number(3))

	var keys []string
	obj.Each(func(key string, _ *document.Value) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)

	v, ok := obj.Get("apple")
	require.True(t, ok)
	assert.Equal(t, 2.0, v.NumberValue())
}

func TestArrayEachUsesIndexKeys(t *testing.T) {
	arr := document.Array(document.String("a"), document.String("b"))
	arr.Append(document.String("c"))

	var keys []string
	arr.Each(func(key string, _ *document.Value) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"0", "1", "2"}, keys)
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, "b", arr.Index(1).StringValue())
	assert.Nil(t, arr.Index(5))
}

func TestKindsAndContainers(t *testing.T) {
	assert.True(t, document.Object().IsContainer())
	assert.True(t, document.Array().IsContainer())
	assert.False(t, document.String("x").IsContainer())
	assert.False(t, document.Null().IsContainer())

	assert.Equal(t, "object", document.KindObject.String())
	assert.Equal(t, "boolean", document.KindBool.String())
	assert.Equal(t, 0, document.Bool(true).Len())
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "hello", document.String("hello").Display())
	assert.Equal(t, "42", document.Number(42).Display())
	assert.Equal(t, "-1", document.Number(-1).Display())
	assert.Equal(t, "3.14", document.Number(3.14).Display())
	assert.Equal(t, "true", document.Bool(true).Display())
	assert.Equal(t, "null", document.Null().Display())
	assert.Equal(t, "{...} (1 fields)", document.Object().Set("a", document.Null()).Display())
	assert.Equal(t, "[...] (2 items)", document.Array(document.Null(), document.Null()).Display())
}

func TestInterfaceRoundTrip(t *testing.T) {
	doc := document.Object().
		Set("s", document.String("v")).
		Set("n", document.Number(1.5)).
		Set("list", document.Array(document.Bool(false), document.Null()))

	assert.Equal(t, map[string]interface{}{
		"s":    "v",
		"n":    1.5,
		"list": []interface{}{false, nil},
	}, doc.Interface())
}
