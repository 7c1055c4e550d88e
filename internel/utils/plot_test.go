package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlotSteps(t *testing.T) {
	assert.Equal(t, " 1 |--  --\n 0 |  --\n", PlotSteps([]int8{1, 0, 1}))
	assert.Equal(t, " 1 |--\n-1 |  ----\n", PlotSteps([]int{1, -1, -1}))
	assert.Equal(t, "", PlotSteps([]int32{}))
}

func TestPlotStepsDoesNotReorderInput(t *testing.T) {
	values := []int{0, 1, -1}
	PlotSteps(values)
	assert.Equal(t, []int{0, 1, -1}, values)
}
