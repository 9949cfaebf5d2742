package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestOptionalFallbacks(t *testing.T) {
	assert := require.New(t)
	now := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	later := now.Add(time.Hour)

	assert.Equal(now, Some(now).ValueOr(later))
	assert.Equal(later, None[time.Time]().ValueOr(later))

	assert.Equal(Some(now), Some(now).Or(Some(later)))
	assert.Equal(Some(later), None[time.Time]().Or(Some(later)))
	assert.False(None[int]().Or(None[int]()).IsPresent)
}

func TestOptionalString(t *testing.T) {
	assert := require.New(t)

	present := Some(7)
	absent := None[int]()
	assert.Equal("[7]", present.String())
	assert.Equal("[-]", absent.String())
}
