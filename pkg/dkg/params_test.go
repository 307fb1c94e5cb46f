package dkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParametersValid(t *testing.T) {
	p := NewParameters(2, 3)
	assert.Equal(t, 2, p.T)
	assert.Equal(t, 3, p.N)
}

func TestNewParametersPanicsOnZeroThreshold(t *testing.T) {
	assert.Panics(t, func() { NewParameters(0, 3) })
}

func TestNewParametersPanicsOnThresholdExceedingNodes(t *testing.T) {
	assert.Panics(t, func() { NewParameters(4, 3) })
}
