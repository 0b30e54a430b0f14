package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) → (M, N).
//
// Inputs may be strided views (such as transposes); they are packed before
// the multiply. The product itself is computed with gonum BLAS.
//
// Panics on non-2D inputs or mismatched inner dimensions; shape validation
// with recoverable errors belongs to the callers in the nn package.
func (t *Tensor[T]) MatMul(other *Tensor[T]) *Tensor[T] {
	aShape, bShape := t.Shape(), other.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	a := t.Contiguous()
	b := other.Contiguous()

	raw, err := NewRaw(Shape{m, n}, t.DType())
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	switch t.DType() {
	case Float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: m, Cols: k, Stride: k, Data: a.raw.AsFloat32()},
			blas32.General{Rows: k, Cols: n, Stride: n, Data: b.raw.AsFloat32()},
			0,
			blas32.General{Rows: m, Cols: n, Stride: n, Data: raw.AsFloat32()})
	case Float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: m, Cols: k, Stride: k, Data: a.raw.AsFloat64()},
			blas64.General{Rows: k, Cols: n, Stride: n, Data: b.raw.AsFloat64()},
			0,
			blas64.General{Rows: m, Cols: n, Stride: n, Data: raw.AsFloat64()})
	}

	return New[T](raw)
}

// Add performs element-wise addition with NumPy-style broadcasting.
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{3, 4})
//	b := tensor.Ones[float32](Shape{4})
//	c := a.Add(b) // Shape: [3, 4] (b broadcast across rows)
func (t *Tensor[T]) Add(other *Tensor[T]) *Tensor[T] {
	return zipWith(t, other, func(a, b T) T { return a + b })
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T]) Sub(other *Tensor[T]) *Tensor[T] {
	return zipWith(t, other, func(a, b T) T { return a - b })
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T]) Mul(other *Tensor[T]) *Tensor[T] {
	return zipWith(t, other, func(a, b T) T { return a * b })
}

// Apply returns a new tensor with fn applied to every element.
// The receiver is not modified.
func (t *Tensor[T]) Apply(fn func(T) T) *Tensor[T] {
	result := t.Contiguous().Clone()
	data := result.Data()
	for i, v := range data {
		data[i] = fn(v)
	}
	return result
}

// zipWith applies a binary function element-wise with broadcasting.
func zipWith[T DType](a, b *Tensor[T], fn func(T, T) T) *Tensor[T] {
	outShape, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("elementwise op: %v", err))
	}

	raw, err := NewRaw(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("elementwise op: %v", err))
	}
	out := New[T](raw)

	dst := out.Data()
	aBuf, bBuf := a.buf(), b.buf()
	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = fn(aBuf[broadcastIndex(i, outShape, a.raw)], bBuf[broadcastIndex(i, outShape, b.raw)])
	}
	return out
}

// broadcastIndex maps a row-major element number of the broadcast result to
// a physical buffer index of a (possibly smaller, possibly strided) operand.
func broadcastIndex(logical int, outShape Shape, src *RawTensor) int {
	idx := src.offset
	shift := len(outShape) - len(src.shape)
	for d := len(outShape) - 1; d >= 0; d-- {
		coord := logical % outShape[d]
		logical /= outShape[d]

		sd := d - shift
		if sd < 0 {
			continue
		}
		if src.shape[sd] == 1 {
			continue // broadcast dimension, coordinate pinned to 0
		}
		idx += coord * src.stride[sd]
	}
	return idx
}
