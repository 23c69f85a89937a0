package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("/clips/a.mp4")
	is2 := domain.NewInternedString("/clips/a.mp4")

	assert.Equal(t, is1.Value(), is2.Value())
	assert.Equal(t, "/clips/a.mp4", is1.String())
}

func TestInternedString_ZeroValue(t *testing.T) {
	var is domain.InternedString
	assert.Empty(t, is.String())
}

func TestInternedStringJSON(t *testing.T) {
	type record struct {
		Path domain.InternedString `json:"path"`
	}

	data, err := json.Marshal(record{Path: domain.NewInternedString("/clips/b.mov")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"/clips/b.mov"}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "/clips/b.mov", out.Path.String())
}
