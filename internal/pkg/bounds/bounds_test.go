package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeClamp(t *testing.T) {
	r := MustRange[float64](0, 100)

	assert.Equal(t, 0.0, r.Clamp(-3))
	assert.Equal(t, 100.0, r.Clamp(250))
	assert.Equal(t, 42.5, r.Clamp(42.5))
}

func TestRangeContains(t *testing.T) {
	r := MustRange(1, 5)

	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(6))
}

func TestMustRangePanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() {
		MustRange(5, 1)
	})
}
