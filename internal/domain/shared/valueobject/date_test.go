package valueobject

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("parses calendar date", func(t *testing.T) {
		d, err := ParseDate("2024-03-05")

		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, "2024-03-05", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := ParseDate("05/03/2024")
		assert.Error(t, err)
	})
}

func TestDateComparisons(t *testing.T) {
	earlier := NewDate(2024, time.January, 1)
	later := NewDate(2024, time.December, 31)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(NewDate(2024, time.January, 1)))
	assert.False(t, earlier.Equal(later))
}

func TestDateInRange(t *testing.T) {
	d := NewDate(2024, time.March, 15)

	t.Run("inclusive on both bounds", func(t *testing.T) {
		assert.True(t, d.InRange(d, d))
		assert.True(t, d.InRange(NewDate(2024, time.March, 1), NewDate(2024, time.March, 31)))
	})

	t.Run("excluded outside bounds", func(t *testing.T) {
		assert.False(t, d.InRange(NewDate(2024, time.March, 16), NewDate(2024, time.March, 31)))
		assert.False(t, d.InRange(NewDate(2024, time.March, 1), NewDate(2024, time.March, 14)))
	})

	t.Run("zero bound is unbounded", func(t *testing.T) {
		assert.True(t, d.InRange(Date{}, NewDate(2024, time.March, 31)))
		assert.True(t, d.InRange(NewDate(2024, time.March, 1), Date{}))
	})
}

func TestDateJSON(t *testing.T) {
	t.Run("marshals as calendar string", func(t *testing.T) {
		data, err := json.Marshal(NewDate(2024, time.March, 5))

		require.NoError(t, err)
		assert.Equal(t, `"2024-03-05"`, string(data))
	})

	t.Run("zero date marshals as null", func(t *testing.T) {
		data, err := json.Marshal(Date{})

		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("round trips", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-05"`), &d))
		assert.Equal(t, "2024-03-05", d.String())

		var zero Date
		require.NoError(t, json.Unmarshal([]byte("null"), &zero))
		assert.True(t, zero.IsZero())
	})
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
}
