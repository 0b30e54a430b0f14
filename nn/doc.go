// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for the Loom library.
//
// # Overview
//
// The centerpiece is the Autoencoder: a pair of affine transforms
// (encoder, decoder) with optional tied weights, optional activation,
// optional corruption of the hidden representation, and Xavier/Glorot
// uniform weight initialization.
//
// # Basic Usage
//
//	import (
//	    "github.com/loom-ml/loom/nn"
//	    "github.com/loom-ml/loom/tensor"
//	)
//
//	func main() {
//	    ae, err := nn.NewAutoencoder(784, 32, nn.WithTied(true))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    batch := tensor.Randn[float32](tensor.Shape{16, 784})
//	    hidden, err := ae.Encode(batch)   // [16, 784] → [16, 32]
//	    restored, err := ae.Decode(hidden) // [16, 32] → [16, 784]
//	}
//
// # Denoising
//
// A corruption module injects noise into the hidden representation during
// Encode, for denoising-autoencoder training:
//
//	drop, _ := nn.NewDropout(0.2)
//	ae, err := nn.NewAutoencoder(784, 32, nn.WithCorruption(drop))
//
// # Errors
//
// Constructors and forward passes return sentinel errors
// (ErrInvalidDimension, ErrShapeMismatch, ErrInvalidGain) that callers can
// match with errors.Is. Operations either fully succeed or have no effect.
package nn
