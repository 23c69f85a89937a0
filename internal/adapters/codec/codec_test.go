package codec_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/internal/adapters/codec"
	"go.trai.ch/steady/internal/core/domain"
)

type doc struct {
	Stored *domain.StoredParams `json:"stored"`
}

func TestCodec_EncodeDecode(t *testing.T) {
	c, err := codec.New()
	require.NoError(t, err)

	stored := domain.NewStoredParams("abc")
	stored.Values.Float[domain.ParamFov] = 1.25
	stored.SequenceSize = domain.Size{Width: 1920, Height: 1080}

	blob, err := c.Encode(doc{Stored: stored})
	require.NoError(t, err)
	assert.Equal(t, codec.Version, binary.LittleEndian.Uint16(blob))

	var out doc
	version, err := c.Decode(blob, &out)
	require.NoError(t, err)
	assert.Equal(t, codec.Version, version)
	require.NotNil(t, out.Stored)
	assert.Equal(t, "abc", out.Stored.InstanceID)
	assert.InDelta(t, 1.25, out.Stored.Values.Float[domain.ParamFov], 1e-9)
	assert.Equal(t, "---", out.Stored.Pending.String[domain.ParamStatus])
	assert.Equal(t, stored.SequenceSize, out.Stored.SequenceSize)
}

func TestCodec_DecodeFailures(t *testing.T) {
	c, err := codec.New()
	require.NoError(t, err)

	valid, err := c.Encode(doc{Stored: domain.NewStoredParams("abc")})
	require.NoError(t, err)

	wrongVersion := append([]byte{}, valid...)
	binary.LittleEndian.PutUint16(wrongVersion, 7)

	tests := []struct {
		name string
		blob []byte
	}{
		{name: "empty", blob: nil},
		{name: "header only", blob: valid[:2]},
		{name: "truncated", blob: valid[:len(valid)/2]},
		{name: "wrong version", blob: wrongVersion},
		{name: "garbage", blob: []byte{1, 0, 'n', 'o', 't', ' ', 'z', 's', 't', 'd'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out doc
			_, err := c.Decode(tt.blob, &out)
			require.ErrorIs(t, err, domain.ErrDeserializeFailed)
		})
	}
}

func TestCodec_DecodeRejectsOversizedDocument(t *testing.T) {
	stored := domain.NewStoredParams("abc")
	stored.Values.String[domain.ParamProjectData] = strings.Repeat("x", 4096)

	small, err := codec.New(codec.WithMaxDocumentSize(1024))
	require.NoError(t, err)
	blob, err := small.Encode(doc{Stored: stored})
	require.NoError(t, err)

	var out doc
	_, err = small.Decode(blob, &out)
	require.ErrorIs(t, err, domain.ErrDeserializeFailed)

	def, err := codec.New()
	require.NoError(t, err)
	_, err = def.Decode(blob, &out)
	require.NoError(t, err)
	assert.Len(t, out.Stored.Values.String[domain.ParamProjectData], 4096)
}
