package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is the low-level tensor representation: a flat buffer plus the
// shape, strides and element offset that describe how to index it.
//
// Views (for example the transpose of a matrix) share the underlying buffer
// with the tensor they were derived from, so a write through one is visible
// through the other.
type RawTensor struct {
	data   []byte   // Underlying buffer, shared between views
	shape  Shape    // Tensor dimensions
	stride []int    // Memory strides in elements (row-major when contiguous)
	offset int      // Element offset into the buffer
	dtype  DataType // Runtime type information
}

// NewRaw creates a new contiguous RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		offset: 0,
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides in elements.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// IsContiguous reports whether the tensor's elements are laid out in
// row-major order without gaps, starting at the head of its buffer window.
// Transpose views are not contiguous (unless a dimension is 1).
func (r *RawTensor) IsContiguous() bool {
	expected := r.shape.ComputeStrides()
	for i := range r.stride {
		if r.shape[i] != 1 && r.stride[i] != expected[i] {
			return false
		}
	}
	return true
}

// Contiguous returns a row-major packed version of the tensor.
// If the tensor is already contiguous the receiver is returned unchanged;
// otherwise a new buffer is allocated and the elements are copied in.
func (r *RawTensor) Contiguous() *RawTensor {
	if r.IsContiguous() && r.offset == 0 {
		return r
	}

	packed, err := NewRaw(r.shape, r.dtype)
	if err != nil {
		panic(fmt.Sprintf("contiguous: %v", err)) // shape was already validated
	}

	n := r.NumElements()
	switch r.dtype {
	case Float32:
		src, dst := r.f32buf(), packed.AsFloat32()
		for i := 0; i < n; i++ {
			dst[i] = src[r.elemIndex(i)]
		}
	case Float64:
		src, dst := r.f64buf(), packed.AsFloat64()
		for i := 0; i < n; i++ {
			dst[i] = src[r.elemIndex(i)]
		}
	}
	return packed
}

// elemIndex maps a row-major logical element number to a physical buffer
// index using the tensor's strides.
func (r *RawTensor) elemIndex(logical int) int {
	idx := r.offset
	for d := len(r.shape) - 1; d >= 0; d-- {
		idx += (logical % r.shape[d]) * r.stride[d]
		logical /= r.shape[d]
	}
	return idx
}

// TransposeView returns a transposed view of a 2-D tensor.
//
// The view shares the underlying buffer: no data is copied and writes to
// either tensor are visible through the other. Panics if the tensor is not
// 2-D.
func (r *RawTensor) TransposeView() *RawTensor {
	if len(r.shape) != 2 {
		panic(fmt.Sprintf("transpose view: expected 2D tensor, got shape %v", r.shape))
	}
	return &RawTensor{
		data:   r.data,
		shape:  Shape{r.shape[1], r.shape[0]},
		stride: []int{r.stride[1], r.stride[0]},
		offset: r.offset,
		dtype:  r.dtype,
	}
}

// Clone creates a deep, contiguous copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	packed := r.Contiguous()
	clone, err := NewRaw(r.shape, r.dtype)
	if err != nil {
		panic(fmt.Sprintf("clone: %v", err))
	}
	copy(clone.data, packed.data[packed.offset*packed.dtype.Size():])
	return clone
}

// AsFloat32 interprets the data as []float32 in row-major order.
// Panics if the tensor's dtype is not Float32 or the tensor is a
// non-contiguous view (call Contiguous first).
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	if !r.IsContiguous() {
		panic("AsFloat32: tensor is a non-contiguous view; call Contiguous first")
	}
	return r.f32buf()[r.offset : r.offset+r.NumElements()]
}

// AsFloat64 interprets the data as []float64 in row-major order.
// Panics if the tensor's dtype is not Float64 or the tensor is a
// non-contiguous view (call Contiguous first).
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	if !r.IsContiguous() {
		panic("AsFloat64: tensor is a non-contiguous view; call Contiguous first")
	}
	return r.f64buf()[r.offset : r.offset+r.NumElements()]
}

// f32buf returns the whole underlying buffer as []float32, including
// elements outside this tensor's window. Used for strided access.
func (r *RawTensor) f32buf() []float32 {
	//nolint:gosec // zero-copy reinterpretation, bounds come from the allocation
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), len(r.data)/4)
}

// f64buf returns the whole underlying buffer as []float64.
func (r *RawTensor) f64buf() []float64 {
	//nolint:gosec // zero-copy reinterpretation, bounds come from the allocation
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), len(r.data)/8)
}
