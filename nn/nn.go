// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/tensor"
)

// Module is the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor[float32]) *Parameter {
	return nn.NewParameter(name, t)
}

// Errors

// Sentinel errors returned by constructors and forward passes.
var (
	ErrInvalidDimension = nn.ErrInvalidDimension
	ErrShapeMismatch    = nn.ErrShapeMismatch
	ErrInvalidGain      = nn.ErrInvalidGain
)

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	layer, err := nn.NewLinear(784, 128)
func NewLinear(inFeatures, outFeatures int) (*Linear, error) {
	return nn.NewLinear(inFeatures, outFeatures)
}

// Autoencoder is a vanilla autoencoder with optional tied weights,
// activation and corruption.
type Autoencoder = nn.Autoencoder

// AutoencoderOption configures an Autoencoder.
type AutoencoderOption = nn.AutoencoderOption

// NewAutoencoder creates an autoencoder mapping embeddingDim inputs to a
// hiddenDim representation and back.
//
// Example:
//
//	ae, err := nn.NewAutoencoder(784, 32, nn.WithTied(true))
func NewAutoencoder(embeddingDim, hiddenDim int, opts ...AutoencoderOption) (*Autoencoder, error) {
	return nn.NewAutoencoder(embeddingDim, hiddenDim, opts...)
}

// WithActivation sets the encoder activation (nil disables it). Default: ReLU.
func WithActivation(m Module) AutoencoderOption {
	return nn.WithActivation(m)
}

// WithCorruption sets the corruption applied to the hidden representation
// during Encode. Default: none.
func WithCorruption(m Module) AutoencoderOption {
	return nn.WithCorruption(m)
}

// WithGain sets the gain used for Xavier weight initialization.
// Default: GainReLU.
func WithGain(gain float64) AutoencoderOption {
	return nn.WithGain(gain)
}

// WithTied ties the decoder weight to the transpose of the encoder weight.
// Default: false.
func WithTied(tied bool) AutoencoderOption {
	return nn.WithTied(tied)
}

// Activations

// ReLU is a Rectified Linear Unit activation module: f(x) = max(0, x).
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid is a sigmoid activation module: σ(x) = 1 / (1 + exp(-x)).
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh is a hyperbolic tangent activation module.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// Identity passes its input through unchanged.
type Identity = nn.Identity

// NewIdentity creates a new Identity module.
func NewIdentity() *Identity {
	return nn.NewIdentity()
}

// Func adapts a plain unary tensor function into a Module.
type Func = nn.Func

// NewFunc wraps fn as a Module. fn must return a tensor of the same shape.
func NewFunc(fn func(*tensor.Tensor[float32]) *tensor.Tensor[float32]) *Func {
	return nn.NewFunc(fn)
}

// Corruptions

// Dropout zeroes elements with probability P and rescales the survivors.
type Dropout = nn.Dropout

// NewDropout creates a Dropout module with drop probability p in [0, 1).
func NewDropout(p float64) (*Dropout, error) {
	return nn.NewDropout(p)
}

// GaussianNoise adds independent zero-mean Gaussian noise to each element.
type GaussianNoise = nn.GaussianNoise

// NewGaussianNoise creates a GaussianNoise module with the given standard deviation.
func NewGaussianNoise(stddev float64) (*GaussianNoise, error) {
	return nn.NewGaussianNoise(stddev)
}

// Initialization

// Recommended gain values for Xavier initialization.
const (
	GainLinear  = nn.GainLinear
	GainSigmoid = nn.GainSigmoid
	GainReLU    = nn.GainReLU
	GainTanh    = nn.GainTanh
)

// XavierUniform creates a weight tensor initialized with Xavier (Glorot)
// uniform initialization scaled by gain.
func XavierUniform(fanIn, fanOut int, gain float64, shape tensor.Shape) *tensor.Tensor[float32] {
	return nn.XavierUniform(fanIn, fanOut, gain, shape)
}

// Zeros creates a tensor filled with zeros (bias initialization).
func Zeros(shape tensor.Shape) *tensor.Tensor[float32] {
	return nn.Zeros(shape)
}
