package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/jsontree/document"
	"github.com/grovetools/jsontree/errors"
)

func TestDecodeJSONPreservesKeyOrder(t *testing.T) {
	v, err := document.DecodeJSON([]byte(`{"zebra": 1, "apple": 2, "mango": {"b": true, "a": false}}`))
	require.NoError(t, err)
	require.Equal(t, document.KindObject, v.Kind())

	var keys []string
	v.Each(func(key string, _ *document.Value) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)

	nested, ok := v.Get("mango")
	require.True(t, ok)
	keys = nil
	nested.Each(func(key string, _ *document.Value) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestDecodeJSONScalarKinds(t *testing.T) {
	v, err := document.DecodeJSON([]byte(`{"s": "e\"sc", "n": 1.25, "i": -3, "b": false, "z": null, "a": [1, "two"]}`))
	require.NoError(t, err)

	s, _ := v.Get("s")
	assert.Equal(t, document.KindString, s.Kind())
	assert.Equal(t, `e"sc`, s.StringValue())

	n, _ := v.Get("n")
	assert.Equal(t, 1.25, n.NumberValue())

	i, _ := v.Get("i")
	assert.Equal(t, -3.0, i.NumberValue())

	b, _ := v.Get("b")
	assert.Equal(t, document.KindBool, b.Kind())
	assert.False(t, b.BoolValue())

	z, _ := v.Get("z")
	assert.Equal(t, document.KindNull, z.Kind())

	a, _ := v.Get("a")
	require.Equal(t, document.KindArray, a.Kind())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "two", a.Index(1).StringValue())
}

func TestDecodeJSONTopLevelForms(t *testing.T) {
	arr, err := document.DecodeJSON([]byte(`[1, 2]`))
	require.NoError(t, err)
	assert.Equal(t, document.KindArray, arr.Kind())

	str, err := document.DecodeJSON([]byte(`"lonely"`))
	require.NoError(t, err)
	assert.Equal(t, "lonely", str.StringValue())
}

func TestDecodeJSONMalformed(t *testing.T) {
	for _, input := range []string{``, `{`, `{"a":}`, `tru`} {
		_, err := document.DecodeJSON([]byte(input))
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.HasCode(err, errors.ErrCodeDecodeFailed), "input %q", input)
	}
}

func TestDecodeYAMLPreservesKeyOrder(t *testing.T) {
	v, err := document.DecodeYAML([]byte("zebra: 1\napple: two\nmango:\n  - x\n  - y\n"))
	require.NoError(t, err)

	var keys []string
	v.Each(func(key string, _ *document.Value) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)

	mango, _ := v.Get("mango")
	assert.Equal(t, document.KindArray, mango.Kind())
	assert.Equal(t, "y", mango.Index(1).StringValue())
}

func TestDecodeYAMLScalarTags(t *testing.T) {
	v, err := document.DecodeYAML([]byte("i: 3\nf: 1.5\nb: true\nz: null\ns: plain\n"))
	require.NoError(t, err)

	i, _ := v.Get("i")
	assert.Equal(t, document.KindNumber, i.Kind())
	assert.Equal(t, 3.0, i.NumberValue())

	f, _ := v.Get("f")
	assert.Equal(t, 1.5, f.NumberValue())

	b, _ := v.Get("b")
	assert.True(t, b.BoolValue())

	z, _ := v.Get("z")
	assert.Equal(t, document.KindNull, z.Kind())

	s, _ := v.Get("s")
	assert.Equal(t, "plain", s.StringValue())
}

func TestDecodeYAMLAliases(t *testing.T) {
	v, err := document.DecodeYAML([]byte("base: &b\n  k: 1\ncopy: *b\n"))
	require.NoError(t, err)

	cp, ok := v.Get("copy")
	require.True(t, ok)
	k, ok := cp.Get("k")
	require.True(t, ok)
	assert.Equal(t, 1.0, k.NumberValue())
}

func TestDecodeYAMLEmpty(t *testing.T) {
	v, err := document.DecodeYAML([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, document.KindNull, v.Kind())
}

func TestDecodeYAMLMalformed(t *testing.T) {
	_, err := document.DecodeYAML([]byte("a: [unclosed"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDecodeFailed))
}
