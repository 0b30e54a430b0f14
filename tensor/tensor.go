// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// Type aliases for the public API.

// DType is a constraint for tensor data types.
// Supported types: float32, float64.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2D tensor with dimensions 2×3.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32 or float64).
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y := tensor.Ones[float32](tensor.Shape{2, 3})
//	z := x.Add(y) // Element-wise addition
type Tensor[T DType] = tensor.Tensor[T]

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full[T](shape, value)
}

// Rand creates a tensor filled with random values from uniform distribution U(0, 1).
func Rand[T DType](shape Shape) *Tensor[T] {
	return tensor.Rand[T](shape)
}

// Randn creates a tensor filled with random values from standard normal distribution N(0, 1).
func Randn[T DType](shape Shape) *Tensor[T] {
	return tensor.Randn[T](shape)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice[T](data, shape)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType](raw *RawTensor) *Tensor[T] {
	return tensor.New[T](raw)
}

// NewRaw creates a new raw tensor with the given shape and dtype.
//
// This is a low-level function. Most users should use high-level creation functions instead.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// BroadcastShapes computes the broadcast shape for two shapes following
// NumPy broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}
