package nn

import (
	"fmt"
	"math/rand"

	"github.com/loom-ml/loom/internal/tensor"
)

// Dropout zeroes each element independently with probability P and scales
// the survivors by 1/(1-P) (inverted dropout), so the expected value of the
// output matches the input.
//
// Its intended use here is as an autoencoder corruption: injected noise on
// the hidden representation for denoising-style training.
type Dropout struct {
	p float64
}

// NewDropout creates a Dropout module with drop probability p in [0, 1).
func NewDropout(p float64) (*Dropout, error) {
	if p < 0 || p >= 1 {
		return nil, fmt.Errorf("dropout probability %v out of range [0, 1)", p)
	}
	return &Dropout{p: p}, nil
}

// P returns the drop probability.
func (d *Dropout) P() float64 {
	return d.p
}

// Forward applies dropout to the input.
func (d *Dropout) Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	if d.p == 0 {
		return input, nil
	}
	scale := float32(1.0 / (1.0 - d.p))
	return input.Apply(func(x float32) float32 {
		//nolint:gosec // math/rand is fine for noise injection
		if rand.Float64() < d.p {
			return 0
		}
		return x * scale
	}), nil
}

// Parameters returns an empty slice (Dropout has no trainable parameters).
func (d *Dropout) Parameters() []*Parameter {
	return nil
}

// GaussianNoise adds independent zero-mean Gaussian noise to each element.
type GaussianNoise struct {
	stddev float64
}

// NewGaussianNoise creates a GaussianNoise module with the given standard
// deviation. A non-positive stddev is rejected; use no corruption instead.
func NewGaussianNoise(stddev float64) (*GaussianNoise, error) {
	if stddev <= 0 {
		return nil, fmt.Errorf("noise stddev %v must be > 0", stddev)
	}
	return &GaussianNoise{stddev: stddev}, nil
}

// Stddev returns the noise standard deviation.
func (g *GaussianNoise) Stddev() float64 {
	return g.stddev
}

// Forward adds N(0, stddev²) noise to every element.
func (g *GaussianNoise) Forward(input *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	return input.Apply(func(x float32) float32 {
		//nolint:gosec // math/rand is fine for noise injection
		return x + float32(rand.NormFloat64()*g.stddev)
	}), nil
}

// Parameters returns an empty slice (GaussianNoise has no trainable parameters).
func (g *GaussianNoise) Parameters() []*Parameter {
	return nil
}

// Compile-time interface checks.
var (
	_ Module = (*Dropout)(nil)
	_ Module = (*GaussianNoise)(nil)
)
