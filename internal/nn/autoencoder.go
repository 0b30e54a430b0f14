package nn

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// Autoencoder is a vanilla autoencoder: two affine transforms (encoder and
// decoder) with optional tied weights, optional activation and optional
// corruption of the hidden representation.
//
//	Encode: h = corruption(activation(x @ Wenc.T + benc))
//	Decode: y = h @ Wdec.T + bdec
//
// When the weights are tied, Wdec is never stored: it is the transpose of
// the live encoder weight, so external mutation of the encoder weight (for
// example a training step) is immediately reflected in Decode.
//
// Example:
//
//	ae, err := nn.NewAutoencoder(784, 32, nn.WithTied(true))
//	if err != nil { ... }
//	hidden, err := ae.Encode(batch)         // [N, 784] → [N, 32]
//	restored, err := ae.Decode(hidden)      // [N, 32] → [N, 784]
type Autoencoder struct {
	embeddingDim int
	hiddenDim    int
	activation   Module
	corruption   Module
	gain         float64
	tied         bool

	encoderWeight *Parameter // [hidden_dim, embedding_dim]
	encoderBias   *Parameter // [hidden_dim]
	decoderWeight *Parameter // [embedding_dim, hidden_dim]; nil when tied
	decoderBias   *Parameter // [embedding_dim], never tied
}

// AutoencoderOption configures an Autoencoder.
type AutoencoderOption func(*autoencoderOptions)

type autoencoderOptions struct {
	activation Module
	corruption Module
	gain       float64
	tied       bool
}

// WithActivation sets the encoder activation. Pass nil to disable the
// activation entirely. Default: ReLU.
func WithActivation(m Module) AutoencoderOption {
	return func(o *autoencoderOptions) {
		o.activation = m
	}
}

// WithCorruption sets the corruption applied to the hidden representation
// during Encode, e.g. Dropout for denoising-style training. Default: none.
func WithCorruption(m Module) AutoencoderOption {
	return func(o *autoencoderOptions) {
		o.corruption = m
	}
}

// WithGain sets the gain used for Xavier weight initialization.
// Default: GainReLU, matching the default activation.
func WithGain(gain float64) AutoencoderOption {
	return func(o *autoencoderOptions) {
		o.gain = gain
	}
}

// WithTied ties the decoder weight to the transpose of the encoder weight,
// halving the free parameters. Biases are never tied. Default: false.
func WithTied(tied bool) AutoencoderOption {
	return func(o *autoencoderOptions) {
		o.tied = tied
	}
}

// NewAutoencoder creates an autoencoder mapping embeddingDim inputs to a
// hiddenDim representation and back.
//
// Weight matrices are initialized with Xavier uniform initialization scaled
// by the configured gain; biases are initialized to zeros. When tied, no
// independent decoder weight is allocated.
//
// Returns ErrInvalidDimension if either dimension is not positive, and
// ErrInvalidGain if the configured gain is not positive.
func NewAutoencoder(embeddingDim, hiddenDim int, opts ...AutoencoderOption) (*Autoencoder, error) {
	if embeddingDim <= 0 {
		return nil, fmt.Errorf("%w: embedding dimension %d (must be > 0)", ErrInvalidDimension, embeddingDim)
	}
	if hiddenDim <= 0 {
		return nil, fmt.Errorf("%w: hidden dimension %d (must be > 0)", ErrInvalidDimension, hiddenDim)
	}

	options := &autoencoderOptions{
		activation: NewReLU(),
		gain:       GainReLU,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.gain <= 0 {
		return nil, fmt.Errorf("%w: gain %v (must be > 0)", ErrInvalidGain, options.gain)
	}

	ae := &Autoencoder{
		embeddingDim: embeddingDim,
		hiddenDim:    hiddenDim,
		activation:   options.activation,
		corruption:   options.corruption,
		gain:         options.gain,
		tied:         options.tied,
		encoderWeight: NewParameter("encoder.weight",
			XavierUniform(embeddingDim, hiddenDim, options.gain, tensor.Shape{hiddenDim, embeddingDim})),
		encoderBias: NewParameter("encoder.bias", Zeros(tensor.Shape{hiddenDim})),
		decoderBias: NewParameter("decoder.bias", Zeros(tensor.Shape{embeddingDim})),
	}
	if !options.tied {
		ae.decoderWeight = NewParameter("decoder.weight",
			XavierUniform(hiddenDim, embeddingDim, options.gain, tensor.Shape{embeddingDim, hiddenDim}))
	}
	return ae, nil
}

// DecoderWeight returns the decoder weight matrix, shape
// [embedding_dim, hidden_dim].
//
// For an untied autoencoder this is the stored decoder parameter. For a
// tied autoencoder it is a transpose view of the live encoder weight:
// storage is shared, nothing is cached or copied, so mutations of the
// encoder weight are visible through the returned tensor immediately.
func (ae *Autoencoder) DecoderWeight() *tensor.Tensor[float32] {
	if ae.tied {
		return ae.encoderWeight.Tensor().T()
	}
	return ae.decoderWeight.Tensor()
}

// Encode maps a batch through the encoder.
//
// Input shape: [batch_size, embedding_dim]
// Output shape: [batch_size, hidden_dim]
//
// Computes batch @ Wenc.T + benc, applies the activation if one is
// configured, then the corruption if one is configured. Corruption runs
// only here, never in Decode. Returns ErrShapeMismatch without touching any
// parameter if the input shape is wrong.
func (ae *Autoencoder) Encode(batch *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	if err := check2D(batch, ae.embeddingDim, "encode input"); err != nil {
		return nil, err
	}

	out := batch.MatMul(ae.encoderWeight.Tensor().T()).Add(ae.encoderBias.Tensor())
	var err error
	if ae.activation != nil {
		if out, err = ae.activation.Forward(out); err != nil {
			return nil, err
		}
	}
	if ae.corruption != nil {
		if out, err = ae.corruption.Forward(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Decode maps a batch of hidden representations back to embedding space.
//
// Input shape: [batch_size, hidden_dim]
// Output shape: [batch_size, embedding_dim]
//
// Computes batch @ Wdec.T + bdec with the tied-aware decoder weight. No
// activation or corruption is applied.
func (ae *Autoencoder) Decode(batch *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	if err := check2D(batch, ae.hiddenDim, "decode input"); err != nil {
		return nil, err
	}
	return batch.MatMul(ae.DecoderWeight().T()).Add(ae.decoderBias.Tensor()), nil
}

// Forward runs the full round trip: Decode(Encode(batch)).
//
// The output has the same shape as the input. This is a lossy
// reconstruction, not an identity, except for degenerate parameter
// configurations.
func (ae *Autoencoder) Forward(batch *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	hidden, err := ae.Encode(batch)
	if err != nil {
		return nil, err
	}
	return ae.Decode(hidden)
}

// CopyWeights copies this autoencoder's parameters into two external Linear
// layers: the encoder weight and bias into encoder, and the tied-aware
// decoder weight plus decoder bias into decoder.
//
// All four target slots are shape-checked before anything is written, so on
// ErrShapeMismatch the targets are left untouched. The autoencoder itself
// is never mutated.
func (ae *Autoencoder) CopyWeights(encoder, decoder *Linear) error {
	type slot struct {
		dst  *tensor.Tensor[float32]
		src  *tensor.Tensor[float32]
		name string
	}
	slots := []slot{
		{encoder.Weight().Tensor(), ae.encoderWeight.Tensor(), "encoder weight"},
		{encoder.Bias().Tensor(), ae.encoderBias.Tensor(), "encoder bias"},
		{decoder.Weight().Tensor(), ae.DecoderWeight(), "decoder weight"},
		{decoder.Bias().Tensor(), ae.decoderBias.Tensor(), "decoder bias"},
	}

	for _, s := range slots {
		if !s.dst.Shape().Equal(s.src.Shape()) {
			return fmt.Errorf("%w: %s target has shape %v, want %v",
				ErrShapeMismatch, s.name, s.dst.Shape(), s.src.Shape())
		}
	}
	for _, s := range slots {
		copy(s.dst.Data(), s.src.Contiguous().Data())
	}
	return nil
}

// Parameters returns the stored parameters: encoder weight and bias,
// the decoder weight when untied, and the decoder bias.
func (ae *Autoencoder) Parameters() []*Parameter {
	params := []*Parameter{ae.encoderWeight, ae.encoderBias}
	if !ae.tied {
		params = append(params, ae.decoderWeight)
	}
	return append(params, ae.decoderBias)
}

// StateDict returns the stored parameters keyed by name. A tied model has
// no decoder.weight entry; the decoder weight is derived, not state.
func (ae *Autoencoder) StateDict() map[string]*tensor.RawTensor {
	stateDict := map[string]*tensor.RawTensor{
		"encoder.weight": ae.encoderWeight.Tensor().Raw(),
		"encoder.bias":   ae.encoderBias.Tensor().Raw(),
		"decoder.bias":   ae.decoderBias.Tensor().Raw(),
	}
	if !ae.tied {
		stateDict["decoder.weight"] = ae.decoderWeight.Tensor().Raw()
	}
	return stateDict
}

// LoadStateDict loads parameters from a state dictionary, validating shapes
// and dtypes. Loading a decoder.weight into a tied model is rejected.
func (ae *Autoencoder) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if _, ok := stateDict["decoder.weight"]; ok && ae.tied {
		return fmt.Errorf("unexpected decoder.weight in state dict for tied autoencoder")
	}

	if err := loadParam(ae.encoderWeight, stateDict, "encoder.weight"); err != nil {
		return err
	}
	if err := loadParam(ae.encoderBias, stateDict, "encoder.bias"); err != nil {
		return err
	}
	if !ae.tied {
		if err := loadParam(ae.decoderWeight, stateDict, "decoder.weight"); err != nil {
			return err
		}
	}
	return loadParam(ae.decoderBias, stateDict, "decoder.bias")
}

// EmbeddingDim returns the input (and reconstruction) dimension.
func (ae *Autoencoder) EmbeddingDim() int {
	return ae.embeddingDim
}

// HiddenDim returns the hidden representation dimension.
func (ae *Autoencoder) HiddenDim() int {
	return ae.hiddenDim
}

// Tied reports whether the decoder weight is tied to the encoder weight.
func (ae *Autoencoder) Tied() bool {
	return ae.tied
}

// Gain returns the gain used for weight initialization.
func (ae *Autoencoder) Gain() float64 {
	return ae.gain
}

// EncoderWeight returns the encoder weight tensor, shape
// [hidden_dim, embedding_dim].
func (ae *Autoencoder) EncoderWeight() *tensor.Tensor[float32] {
	return ae.encoderWeight.Tensor()
}

// EncoderBias returns the encoder bias tensor, shape [hidden_dim].
func (ae *Autoencoder) EncoderBias() *tensor.Tensor[float32] {
	return ae.encoderBias.Tensor()
}

// DecoderBias returns the decoder bias tensor, shape [embedding_dim].
func (ae *Autoencoder) DecoderBias() *tensor.Tensor[float32] {
	return ae.decoderBias.Tensor()
}

var _ Module = (*Autoencoder)(nil)
