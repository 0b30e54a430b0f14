package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/internal/tensor"
)

func TestNewAutoencoderDefaults(t *testing.T) {
	ae, err := NewAutoencoder(8, 3)
	require.NoError(t, err)

	assert.Equal(t, 8, ae.EmbeddingDim())
	assert.Equal(t, 3, ae.HiddenDim())
	assert.False(t, ae.Tied())
	assert.InDelta(t, GainReLU, ae.Gain(), 1e-12)

	assert.True(t, ae.EncoderWeight().Shape().Equal(tensor.Shape{3, 8}))
	assert.True(t, ae.EncoderBias().Shape().Equal(tensor.Shape{3}))
	assert.True(t, ae.DecoderWeight().Shape().Equal(tensor.Shape{8, 3}))
	assert.True(t, ae.DecoderBias().Shape().Equal(tensor.Shape{8}))

	// Untied: 4 stored parameters.
	assert.Len(t, ae.Parameters(), 4)
}

func TestNewAutoencoderInvalidDimensions(t *testing.T) {
	_, err := NewAutoencoder(0, 2)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = NewAutoencoder(4, -1)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestNewAutoencoderInvalidGain(t *testing.T) {
	_, err := NewAutoencoder(4, 2, WithGain(0))
	assert.ErrorIs(t, err, ErrInvalidGain)
	_, err = NewAutoencoder(4, 2, WithGain(-1.5))
	assert.ErrorIs(t, err, ErrInvalidGain)
}

func TestBiasesZeroAfterConstruction(t *testing.T) {
	for _, tied := range []bool{false, true} {
		ae, err := NewAutoencoder(6, 4, WithTied(tied))
		require.NoError(t, err)
		for _, v := range ae.EncoderBias().Data() {
			assert.Equal(t, float32(0), v)
		}
		for _, v := range ae.DecoderBias().Data() {
			assert.Equal(t, float32(0), v)
		}
	}
}

func TestTiedDecoderWeightIsLiveTranspose(t *testing.T) {
	ae, err := NewAutoencoder(4, 2, WithTied(true))
	require.NoError(t, err)

	// Tied: 3 stored parameters, no independent decoder weight.
	assert.Len(t, ae.Parameters(), 3)

	dec := ae.DecoderWeight()
	assert.True(t, dec.Shape().Equal(tensor.Shape{4, 2}))
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, ae.EncoderWeight().At(j, i), dec.At(i, j))
		}
	}

	// Mutate the encoder weight; the decoder weight must reflect it on the
	// very same tensor handle, without re-reading the accessor.
	ae.EncoderWeight().Set(42, 1, 3)
	assert.Equal(t, float32(42), dec.At(3, 1))
}

func TestUntiedDecoderWeightIsIndependent(t *testing.T) {
	ae, err := NewAutoencoder(4, 2)
	require.NoError(t, err)

	before := ae.DecoderWeight().Clone()
	ae.EncoderWeight().Set(99, 0, 0)

	after := ae.DecoderWeight()
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, before.At(i, j), after.At(i, j))
		}
	}
}

func TestEncodeDecodeForwardShapes(t *testing.T) {
	const (
		n = 5
		e = 7
		h = 3
	)
	ae, err := NewAutoencoder(e, h)
	require.NoError(t, err)

	batch := tensor.Randn[float32](tensor.Shape{n, e})

	hidden, err := ae.Encode(batch)
	require.NoError(t, err)
	assert.True(t, hidden.Shape().Equal(tensor.Shape{n, h}))

	restored, err := ae.Decode(hidden)
	require.NoError(t, err)
	assert.True(t, restored.Shape().Equal(tensor.Shape{n, e}))

	out, err := ae.Forward(batch)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(batch.Shape()))
}

func TestEncodeIsExactAffineWithoutActivation(t *testing.T) {
	ae, err := NewAutoencoder(3, 2, WithActivation(nil))
	require.NoError(t, err)

	copy(ae.EncoderWeight().Data(), []float32{1, 0, -1, 2, 1, 0})
	copy(ae.EncoderBias().Data(), []float32{0.5, -0.5})

	batch, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{1, 3})
	require.NoError(t, err)

	hidden, err := ae.Encode(batch)
	require.NoError(t, err)

	// batch @ W.T + b = [1*1+2*0+3*(-1)+0.5, 1*2+2*1+3*0-0.5]
	assert.InDeltaSlice(t, []float32{-1.5, 3.5}, hidden.Data(), 1e-5)
}

func TestDefaultActivationIsReLU(t *testing.T) {
	ae, err := NewAutoencoder(2, 2)
	require.NoError(t, err)

	// Force strictly negative pre-activations.
	copy(ae.EncoderWeight().Data(), []float32{-1, 0, 0, -1})

	batch, err := tensor.FromSlice([]float32{3, 5}, tensor.Shape{1, 2})
	require.NoError(t, err)

	hidden, err := ae.Encode(batch)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, hidden.Data())
}

func TestCorruptionAppliedOnlyInEncode(t *testing.T) {
	plusOne := NewFunc(func(x *tensor.Tensor[float32]) *tensor.Tensor[float32] {
		return x.Apply(func(v float32) float32 { return v + 1 })
	})
	ae, err := NewAutoencoder(2, 2, WithActivation(nil), WithCorruption(plusOne))
	require.NoError(t, err)

	// Zero weights everywhere: encode output is exactly the corruption of
	// the zero affine output; decode must stay untouched at zero.
	copy(ae.EncoderWeight().Data(), make([]float32, 4))
	copy(ae.DecoderWeight().Data(), make([]float32, 4))

	batch := tensor.Zeros[float32](tensor.Shape{1, 2})

	hidden, err := ae.Encode(batch)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1}, hidden.Data())

	restored, err := ae.Decode(batch)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, restored.Data())
}

func TestDecodeUsesTiedWeight(t *testing.T) {
	ae, err := NewAutoencoder(2, 2, WithActivation(nil), WithTied(true))
	require.NoError(t, err)

	// Wenc = [[1, 2], [3, 4]] so Wdec = Wenc.T and
	// decode(h) = h @ (Wenc.T).T = h @ Wenc.
	copy(ae.EncoderWeight().Data(), []float32{1, 2, 3, 4})

	hidden, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{1, 2})
	require.NoError(t, err)

	restored, err := ae.Decode(hidden)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{4, 6}, restored.Data(), 1e-5)
}

func TestShapeMismatchLeavesParametersUnchanged(t *testing.T) {
	ae, err := NewAutoencoder(4, 2)
	require.NoError(t, err)

	encBefore := ae.EncoderWeight().Clone()
	decBefore := ae.DecoderWeight().Clone()

	_, err = ae.Encode(tensor.Zeros[float32](tensor.Shape{3, 5}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ae.Decode(tensor.Zeros[float32](tensor.Shape{3, 4}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ae.Encode(tensor.Zeros[float32](tensor.Shape{4}))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	assert.Equal(t, encBefore.Data(), ae.EncoderWeight().Data())
	assert.Equal(t, decBefore.Data(), ae.DecoderWeight().Data())
}

func TestCopyWeights(t *testing.T) {
	for _, tied := range []bool{false, true} {
		ae, err := NewAutoencoder(4, 2, WithTied(tied))
		require.NoError(t, err)

		encoder, err := NewLinear(4, 2)
		require.NoError(t, err)
		decoder, err := NewLinear(2, 4)
		require.NoError(t, err)

		require.NoError(t, ae.CopyWeights(encoder, decoder))

		assert.Equal(t, ae.EncoderWeight().Data(), encoder.Weight().Tensor().Data())
		assert.Equal(t, ae.EncoderBias().Data(), encoder.Bias().Tensor().Data())
		assert.Equal(t, ae.DecoderWeight().Contiguous().Data(), decoder.Weight().Tensor().Data())
		assert.Equal(t, ae.DecoderBias().Data(), decoder.Bias().Tensor().Data())
	}
}

func TestCopyWeightsShapeMismatch(t *testing.T) {
	ae, err := NewAutoencoder(4, 2)
	require.NoError(t, err)

	encoder, err := NewLinear(4, 2)
	require.NoError(t, err)
	wrongDecoder, err := NewLinear(3, 4)
	require.NoError(t, err)

	encWeightBefore := encoder.Weight().Tensor().Clone()

	err = ae.CopyWeights(encoder, wrongDecoder)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// Nothing may be written on failure, not even the slots that matched.
	assert.Equal(t, encWeightBefore.Data(), encoder.Weight().Tensor().Data())
}

func TestZeroBatchRoundTrip(t *testing.T) {
	// E=4, H=2, tied, gain 1, no activation, no corruption:
	// all-zero input must round-trip to all-zero everywhere.
	ae, err := NewAutoencoder(4, 2, WithTied(true), WithGain(1.0), WithActivation(nil))
	require.NoError(t, err)

	zeros4 := tensor.Zeros[float32](tensor.Shape{1, 4})
	zeros2 := tensor.Zeros[float32](tensor.Shape{1, 2})

	hidden, err := ae.Encode(zeros4)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, hidden.Data())

	restored, err := ae.Decode(zeros2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, restored.Data())

	out, err := ae.Forward(zeros4)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, out.Data())
}

func TestAutoencoderStateDict(t *testing.T) {
	ae, err := NewAutoencoder(4, 2)
	require.NoError(t, err)
	sd := ae.StateDict()
	assert.Len(t, sd, 4)

	other, err := NewAutoencoder(4, 2)
	require.NoError(t, err)
	require.NoError(t, other.LoadStateDict(sd))
	assert.Equal(t, ae.EncoderWeight().Data(), other.EncoderWeight().Data())
	assert.Equal(t, ae.DecoderWeight().Data(), other.DecoderWeight().Data())

	tied, err := NewAutoencoder(4, 2, WithTied(true))
	require.NoError(t, err)
	tiedSD := tied.StateDict()
	assert.Len(t, tiedSD, 3)
	assert.NotContains(t, tiedSD, "decoder.weight")

	// A tied model must reject a stray decoder weight.
	err = tied.LoadStateDict(sd)
	assert.Error(t, err)

	tied2, err := NewAutoencoder(4, 2, WithTied(true))
	require.NoError(t, err)
	require.NoError(t, tied2.LoadStateDict(tiedSD))
	assert.Equal(t, tied.EncoderWeight().Data(), tied2.EncoderWeight().Data())
}
