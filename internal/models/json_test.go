package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONValue(t *testing.T) {
	meta := JSON{"source": "seed", "batch_no": "B000042"}

	v, err := meta.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"seed","batch_no":"B000042"}`, string(v.([]byte)))
}

func TestJSONValue_NilIsNull(t *testing.T) {
	var meta JSON

	v, err := meta.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestJSONScan(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		var meta JSON
		require.NoError(t, meta.Scan([]byte(`{"source":"import"}`)))
		assert.Equal(t, "import", meta["source"])
	})

	t.Run("string", func(t *testing.T) {
		var meta JSON
		require.NoError(t, meta.Scan(`{"batch_no":"B000007"}`))
		assert.Equal(t, "B000007", meta["batch_no"])
	})

	t.Run("null column", func(t *testing.T) {
		meta := JSON{"stale": true}
		require.NoError(t, meta.Scan(nil))
		assert.Nil(t, meta)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var meta JSON
		assert.Error(t, meta.Scan(42))
	})
}
