// Package codec frames persisted instance documents as versioned, compressed blobs.
package codec

import (
	"encoding/binary"
	"encoding/json"
	"errors"

	"github.com/klauspost/compress/zstd"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/zerr"
)

// Version is the current blob format version.
const Version uint16 = 1

const headerSize = 2

// DefaultMaxDocumentSize bounds the decompressed size of a blob.
const DefaultMaxDocumentSize uint64 = 32 << 20

// Option configures a Codec.
type Option func(*options)

type options struct {
	maxDocumentSize uint64
}

// WithMaxDocumentSize sets the largest decompressed document Decode accepts.
func WithMaxDocumentSize(n uint64) Option {
	return func(o *options) { o.maxDocumentSize = n }
}

// Codec implements ports.InstanceCodec.
// A blob is a little-endian uint16 version followed by a zstd frame of JSON.
type Codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// New creates a Codec.
func New(opts ...Option) (*Codec, error) {
	o := options{maxDocumentSize: DefaultMaxDocumentSize}
	for _, opt := range opts {
		opt(&o)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd encoder")
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(o.maxDocumentSize))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd decoder")
	}
	return &Codec{encoder: enc, decoder: dec}, nil
}

// Encode implements ports.InstanceCodec.
func (c *Codec) Encode(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal instance")
	}
	blob := binary.LittleEndian.AppendUint16(make([]byte, 0, headerSize+len(payload)/2), Version)
	return c.encoder.EncodeAll(payload, blob), nil
}

// Decode implements ports.InstanceCodec. Every failure is reported as
// domain.ErrDeserializeFailed.
func (c *Codec) Decode(blob []byte, v any) (uint16, error) {
	if len(blob) < headerSize {
		return 0, errors.Join(domain.ErrDeserializeFailed, zerr.With(errors.New("blob too short"), "size", len(blob)))
	}
	version := binary.LittleEndian.Uint16(blob)
	if version != Version {
		return version, errors.Join(domain.ErrDeserializeFailed, zerr.With(errors.New("unsupported version"), "version", version))
	}

	payload, err := c.decoder.DecodeAll(blob[headerSize:], nil)
	if err != nil {
		return version, errors.Join(domain.ErrDeserializeFailed, zerr.Wrap(err, "failed to decompress"))
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return version, errors.Join(domain.ErrDeserializeFailed, zerr.Wrap(err, "failed to unmarshal"))
	}
	return version, nil
}
