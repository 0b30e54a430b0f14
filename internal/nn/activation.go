package nn

import (
	"math"

	"github.com/loom-ml/loom/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	return input.Apply(func(x float32) float32 {
		if x < 0 {
			return 0
		}
		return x
	}), nil
}

// Parameters returns an empty slice (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
func (s *Sigmoid) Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	return input.Apply(func(x float32) float32 {
		return float32(1.0 / (1.0 + math.Exp(float64(-x))))
	}), nil
}

// Parameters returns an empty slice (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

// Tanh is a hyperbolic tangent activation module.
//
// Applies the element-wise function: tanh(x), squashing values to (-1, 1).
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies Tanh activation.
func (t *Tanh) Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	return input.Apply(func(x float32) float32 {
		return float32(math.Tanh(float64(x)))
	}), nil
}

// Parameters returns an empty slice (Tanh has no trainable parameters).
func (t *Tanh) Parameters() []*Parameter {
	return nil
}

// Identity passes its input through unchanged.
//
// Useful where a Module is expected but no transformation is wanted, for
// example to disable an autoencoder's activation while keeping the same
// call path.
type Identity struct{}

// NewIdentity creates a new Identity module.
func NewIdentity() *Identity {
	return &Identity{}
}

// Forward returns the input unchanged.
func (i *Identity) Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	return input, nil
}

// Parameters returns an empty slice (Identity has no trainable parameters).
func (i *Identity) Parameters() []*Parameter {
	return nil
}

// Func adapts a plain unary tensor function into a Module.
//
// Example:
//
//	square := nn.NewFunc(func(t *tensor.Tensor[float32]) *tensor.Tensor[float32] {
//	    return t.Apply(func(x float32) float32 { return x * x })
//	})
type Func struct {
	fn func(*tensor.Tensor[float32]) *tensor.Tensor[float32]
}

// NewFunc wraps fn as a Module. fn must return a tensor of the same shape.
func NewFunc(fn func(*tensor.Tensor[float32]) *tensor.Tensor[float32]) *Func {
	return &Func{fn: fn}
}

// Forward applies the wrapped function.
func (f *Func) Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	return f.fn(input), nil
}

// Parameters returns an empty slice (Func has no trainable parameters).
func (f *Func) Parameters() []*Parameter {
	return nil
}

// Compile-time interface checks.
var (
	_ Module = (*ReLU)(nil)
	_ Module = (*Sigmoid)(nil)
	_ Module = (*Tanh)(nil)
	_ Module = (*Identity)(nil)
	_ Module = (*Func)(nil)
)
