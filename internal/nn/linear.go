package nn

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W.T + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
	bias        *Parameter // [out_features]
}

// NewLinear creates a new Linear layer.
//
// Weights are initialized with Xavier uniform initialization (gain 1);
// biases are initialized to zeros. Returns ErrInvalidDimension if either
// feature count is not positive.
func NewLinear(inFeatures, outFeatures int) (*Linear, error) {
	if inFeatures <= 0 {
		return nil, fmt.Errorf("%w: in features %d (must be > 0)", ErrInvalidDimension, inFeatures)
	}
	if outFeatures <= 0 {
		return nil, fmt.Errorf("%w: out features %d (must be > 0)", ErrInvalidDimension, outFeatures)
	}

	weight := NewParameter("weight",
		XavierUniform(inFeatures, outFeatures, GainLinear, tensor.Shape{outFeatures, inFeatures}))
	bias := NewParameter("bias", Zeros(tensor.Shape{outFeatures}))

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}, nil
}

// Forward computes y = x @ W.T + b.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// Returns ErrShapeMismatch if the input is not 2-D or its trailing
// dimension does not equal the layer's input feature count.
func (l *Linear) Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	if err := check2D(input, l.inFeatures, "linear input"); err != nil {
		return nil, err
	}

	// [batch, in] @ [in, out] + [out] broadcast over rows
	out := input.MatMul(l.weight.Tensor().T()).Add(l.bias.Tensor())
	return out, nil
}

// Parameters returns the trainable parameters of this layer: [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns a map of parameter names to raw tensors.
func (l *Linear) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"weight": l.weight.Tensor().Raw(),
		"bias":   l.bias.Tensor().Raw(),
	}
}

// LoadStateDict loads parameters from a state dictionary.
func (l *Linear) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if err := loadParam(l.weight, stateDict, "weight"); err != nil {
		return err
	}
	return loadParam(l.bias, stateDict, "bias")
}

// check2D validates that t is 2-D with the given trailing dimension.
func check2D(t *tensor.Tensor[float32], want int, what string) error {
	shape := t.Shape()
	if len(shape) != 2 {
		return fmt.Errorf("%w: %s must be 2D [batch, features], got shape %v", ErrShapeMismatch, what, shape)
	}
	if shape[1] != want {
		return fmt.Errorf("%w: %s has trailing dimension %d, want %d", ErrShapeMismatch, what, shape[1], want)
	}
	return nil
}

// loadParam copies one named entry of a state dict into dst, validating
// presence, dtype and shape first.
func loadParam(dst *Parameter, stateDict map[string]*tensor.RawTensor, key string) error {
	raw, ok := stateDict[key]
	if !ok {
		return fmt.Errorf("missing %s in state dict", key)
	}
	if raw.DType() != tensor.Float32 {
		return fmt.Errorf("%s dtype mismatch: expected float32, got %v", key, raw.DType())
	}
	if !raw.Shape().Equal(dst.Tensor().Shape()) {
		return fmt.Errorf("%w: %s shape %v, want %v", ErrShapeMismatch, key, raw.Shape(), dst.Tensor().Shape())
	}
	copy(dst.Tensor().Data(), raw.Contiguous().AsFloat32())
	return nil
}

var _ Module = (*Linear)(nil)
