package nn

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/loom-ml/loom/internal/tensor"
)

// Recommended gain values for Xavier initialization, by the activation that
// follows the layer. These match the standard calculate_gain table.
const (
	GainLinear  = 1.0
	GainSigmoid = 1.0
	GainReLU    = math.Sqrt2
	GainTanh    = 5.0 / 3.0
)

// XavierUniform creates a weight tensor initialized with Xavier (Glorot)
// uniform initialization scaled by gain.
//
// Values are drawn from U(-a, a) with a = gain * sqrt(6 / (fan_in + fan_out)).
// This initialization helps maintain variance of activations across layers.
func XavierUniform(fanIn, fanOut int, gain float64, shape tensor.Shape) *tensor.Tensor[float32] {
	bound := gain * math.Sqrt(6.0/float64(fanIn+fanOut))
	dist := distuv.Uniform{Min: -bound, Max: bound}

	t := tensor.Zeros[float32](shape)
	data := t.Data()
	for i := range data {
		data[i] = float32(dist.Rand())
	}
	return t
}

// Zeros creates a tensor filled with zeros.
// This is how all bias vectors are initialized.
func Zeros(shape tensor.Shape) *tensor.Tensor[float32] {
	return tensor.Zeros[float32](shape)
}
