package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedGetSet(t *testing.T) {
	c := NewKeyed[int]("test")

	_, err := c.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)

	c.Set("a", 42, time.Minute)
	v, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	c.Delete("a")
	_, err = c.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeyedMutexGetSet(t *testing.T) {
	c := NewKeyed[string]("test")

	calls := 0
	valueFunc := func() (string, error) {
		calls++
		return "computed", nil
	}

	v, err := c.MutexGetSet("k", valueFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "computed", v)

	v, err = c.MutexGetSet("k", valueFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "computed", v)
	assert.Equal(t, 1, calls, "valueFunc should only be invoked once")
}

func TestSingular(t *testing.T) {
	s := NewSingular[int]("snapshot")

	var got int
	assert.ErrorIs(t, s.Get(&got), ErrNotFound)

	require.NoError(t, s.Set(7, time.Minute))
	require.NoError(t, s.Get(&got))
	assert.Equal(t, 7, got)
}
