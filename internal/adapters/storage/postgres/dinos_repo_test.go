package postgres

import (
	"database/sql"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullFloatMapping(t *testing.T) {
	assert.True(t, math.IsNaN(nullToNaN(sql.NullFloat64{})))
	assert.Equal(t, 12.5, nullToNaN(sql.NullFloat64{Float64: 12.5, Valid: true}))

	assert.False(t, nanToNull(math.NaN()).Valid)
	assert.False(t, nanToNull(math.Inf(1)).Valid)
	assert.False(t, nanToNull(math.Inf(-1)).Valid)
	assert.Equal(t, sql.NullFloat64{Float64: 0, Valid: true}, nanToNull(0))
	assert.Equal(t, sql.NullFloat64{Float64: 70, Valid: true}, nanToNull(70))

	// NaN sobrevive la ida y vuelta como NULL
	assert.True(t, math.IsNaN(nullToNaN(nanToNull(math.NaN()))))
	assert.Equal(t, 3.25, nullToNaN(nanToNull(3.25)))
}

func TestExtraRoundTrip(t *testing.T) {
	b, err := encodeExtra(nil)
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = encodeExtra(map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, b)

	m, err := decodeExtra(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	in := map[string]any{"colour": "green", "length": 12.0, "tags": []any{"a", "b"}}
	b, err = encodeExtra(in)
	require.NoError(t, err)

	m, err = decodeExtra(b)
	require.NoError(t, err)
	assert.Equal(t, in, m)

	_, err = decodeExtra([]byte(`{"broken":`))
	assert.Error(t, err)
}
