// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Loom library.
//
// # Overview
//
// Tensors are the fundamental data structure in Loom. This package provides:
//   - Generic type-safe tensors (Tensor[T])
//   - NumPy-style broadcasting
//   - Zero-copy transpose views
//   - BLAS-backed matrix multiplication
//
// # Basic Usage
//
//	import "github.com/loom-ml/loom/tensor"
//
//	func main() {
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	    y := tensor.Ones[float32](tensor.Shape{2, 3})
//
//	    z := x.Add(y)
//	    result := x.MatMul(y.T())
//	}
//
// # Supported Data Types
//
// The tensor package supports float32 and float64 via the DType constraint.
//
// # Views
//
// T() returns a transposed view that shares storage with its source: no
// data is copied, and writes to the source are visible through the view.
// Call Contiguous to get an independent row-major packed tensor.
//
// # Broadcasting
//
// Element-wise operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 4}) // (3, 4)
//	b := tensor.Ones[float32](tensor.Shape{4})     // (4)
//	c := a.Add(b)                                  // (3, 4)
package tensor
