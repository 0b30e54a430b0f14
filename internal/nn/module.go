// Package nn implements neural network modules for the Loom library.
//
// This package provides the building blocks around the autoencoder:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named trainable parameters
//   - Linear: Fully connected layer
//   - Autoencoder: Paired encoder/decoder with optional tied weights
//   - Activations: ReLU, Sigmoid, Tanh, Identity
//   - Corruptions: Dropout, GaussianNoise
//
// Design inspired by PyTorch's nn.Module but adapted for Go.
package nn

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
//
// Forward returns an error when the input's shape violates the module's
// contract; modules never partially apply.
type Module interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input tensor should have the appropriate shape for this module.
	// For example, Linear expects [batch_size, in_features].
	Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error)

	// Parameters returns all trainable parameters of this module.
	//
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter
}
