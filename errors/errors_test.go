package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeNodeNotFound, "no node with key 'a.b'")
	assert.Equal(t, "NODE_NOT_FOUND: no node with key 'a.b'", err.Error())

	wrapped := Wrap(fmt.Errorf("boom"), ErrCodeDecodeFailed, "failed to decode json document")
	assert.Contains(t, wrapped.Error(), "caused by: boom")
	assert.EqualError(t, wrapped.Unwrap(), "boom")
}

func TestWithDetail(t *testing.T) {
	err := ConfigNotFound("/tmp/jsontree.yml")
	require.NotNil(t, err.Details)
	assert.Equal(t, "/tmp/jsontree.yml", err.Details["path"])
	assert.Contains(t, err.ToJSON(), "CONFIG_NOT_FOUND")
}

func TestHasCode(t *testing.T) {
	inner := DecodeFailed("yaml", fmt.Errorf("bad indent"))
	outer := fmt.Errorf("loading document: %w", inner)

	assert.True(t, HasCode(outer, ErrCodeDecodeFailed))
	assert.False(t, HasCode(outer, ErrCodeConfigInvalid))
	assert.False(t, HasCode(nil, ErrCodeInternal))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrCodeInternal))
}

func TestGetCodeWalksChain(t *testing.T) {
	inner := New(ErrCodeDecodeFailed, "bad document")

	assert.Equal(t, ErrCodeDecodeFailed, GetCode(inner))

	// A foreign wrapper between the caller and the TreeError still resolves.
	wrapped := fmt.Errorf("opening input: %w", inner)
	assert.Equal(t, ErrCodeDecodeFailed, GetCode(wrapped))

	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain failure")))
	assert.Equal(t, ErrCodeInternal, GetCode(nil))
}
