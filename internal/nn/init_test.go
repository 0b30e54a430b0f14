package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loom-ml/loom/internal/tensor"
)

func TestXavierUniformBounds(t *testing.T) {
	fanIn, fanOut := 30, 20
	gain := 1.0
	bound := float32(gain * math.Sqrt(6.0/float64(fanIn+fanOut)))

	w := XavierUniform(fanIn, fanOut, gain, tensor.Shape{fanOut, fanIn})
	assert.True(t, w.Shape().Equal(tensor.Shape{20, 30}))

	nonZero := 0
	for _, v := range w.Data() {
		assert.GreaterOrEqual(t, v, -bound)
		assert.LessOrEqual(t, v, bound)
		if v != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 0, "weights should not all be zero")
}

func TestXavierUniformGainScaling(t *testing.T) {
	// With a large gain the samples must exceed the gain-1 bound at least once.
	fanIn, fanOut := 100, 100
	smallBound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	w := XavierUniform(fanIn, fanOut, 10, tensor.Shape{fanOut, fanIn})
	exceeded := false
	for _, v := range w.Data() {
		if math.Abs(float64(v)) > smallBound {
			exceeded = true
			break
		}
	}
	assert.True(t, exceeded, "gain should widen the sampling interval")
}

func TestGainConstants(t *testing.T) {
	assert.Equal(t, 1.0, GainLinear)
	assert.InDelta(t, math.Sqrt(2), GainReLU, 1e-12)
	assert.InDelta(t, 5.0/3.0, GainTanh, 1e-12)
}

func TestZeros(t *testing.T) {
	b := Zeros(tensor.Shape{7})
	for _, v := range b.Data() {
		assert.Equal(t, float32(0), v)
	}
}
