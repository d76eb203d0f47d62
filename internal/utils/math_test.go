package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomFloat_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRandomInt_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInt(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
}

func TestRandomInt_MinGreaterThanMax(t *testing.T) {
	assert.Equal(t, 5, RandomInt(5, 1))
}
