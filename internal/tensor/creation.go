package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) *Tensor[T] {
	return Full[T](shape, 0)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := alloc[T](shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor filled with random values from the uniform
// distribution U(0, 1).
func Rand[T DType](shape Shape) *Tensor[T] {
	t := alloc[T](shape)
	data := t.Data()
	for i := range data {
		//nolint:gosec // math/rand is fine for numeric initialization
		data[i] = T(rand.Float64())
	}
	return t
}

// Randn creates a tensor filled with random values from the standard normal
// distribution N(0, 1).
func Randn[T DType](shape Shape) *Tensor[T] {
	t := alloc[T](shape)
	data := t.Data()
	for i := range data {
		//nolint:gosec // math/rand is fine for numeric initialization
		data[i] = T(rand.NormFloat64())
	}
	return t
}

// alloc creates a zeroed tensor, panicking on an invalid shape.
// Creation helpers take shapes from callers that construct them literally,
// so an invalid shape is programmer error.
func alloc[T DType](shape Shape) *Tensor[T] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return New[T](raw)
}
