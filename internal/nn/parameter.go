package nn

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors that an external training procedure mutates in
// place; this library only allocates and initializes them.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
type Parameter struct {
	name   string                  // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor[float32] // The parameter tensor
}

// NewParameter creates a new trainable parameter.
// The parameter tensor should be initialized before creating the Parameter.
func NewParameter(name string, t *tensor.Tensor[float32]) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor[float32] {
	return p.tensor
}
