package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1010), ToCents(10.10))
	assert.Equal(t, int64(1069), ToCents(10.69))
	assert.Equal(t, int64(100), ToCents(1.0))
	assert.Equal(t, int64(0), ToCents(0))
	assert.Equal(t, int64(33), ToCents(0.333))
}
