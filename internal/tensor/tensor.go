package tensor

import "fmt"

// Tensor is a generic tensor with element type T.
// It provides type-safe operations over multi-dimensional arrays.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
//	result := t.Add(t) // Type-safe addition
type Tensor[T DType] struct {
	raw *RawTensor
}

// New creates a Tensor from a RawTensor.
func New[T DType](raw *RawTensor) *Tensor[T] {
	return &Tensor[T]{raw: raw}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	t := New[T](raw)
	copy(t.Data(), data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used for low-level operations.
func (t *Tensor[T]) Raw() *RawTensor {
	return t.raw
}

// IsContiguous reports whether the tensor is a row-major packed tensor
// rather than a strided view.
func (t *Tensor[T]) IsContiguous() bool {
	return t.raw.IsContiguous()
}

// Contiguous returns a row-major packed version of the tensor.
// The receiver is returned unchanged if it is already contiguous.
func (t *Tensor[T]) Contiguous() *Tensor[T] {
	raw := t.raw.Contiguous()
	if raw == t.raw {
		return t
	}
	return New[T](raw)
}

// Data returns a typed slice view of the tensor's data (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
// Panics if the tensor is a non-contiguous view; call Contiguous first.
func (t *Tensor[T]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	default:
		panic("unsupported type")
	}
}

// At returns the element at the given indices.
// Works on views as well as contiguous tensors.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.buf()[t.bufIndex(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.buf()[t.bufIndex(indices)] = value
}

// bufIndex translates multi-dimensional indices into a physical buffer index.
func (t *Tensor[T]) bufIndex(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	offset := t.raw.offset
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// buf returns the whole underlying buffer as a typed slice, for strided access.
func (t *Tensor[T]) buf() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.f32buf()).([]T)
	case float64:
		return any(t.raw.f64buf()).([]T)
	default:
		panic("unsupported type")
	}
}

// T returns a transposed view of a 2-D tensor.
//
// The view shares storage with the receiver: no data is copied, and any
// later mutation of the receiver is visible through the view. Panics if the
// tensor is not 2-D.
func (t *Tensor[T]) T() *Tensor[T] {
	return New[T](t.raw.TransposeView())
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return New[T](t.raw.Clone())
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.raw.DType(), t.raw.Shape())
}
