package app_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_CorruptBlobRecovers(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, afero.WriteFile(f.fs, "/out/bad.blob", []byte{0xff, 0x00, 0x13}, 0o644))

	inspection, err := f.app.Inspect(context.Background(), "/out/bad.blob")
	require.NoError(t, err)
	assert.True(t, inspection.Recovered)
	assert.Zero(t, inspection.Version)
	assert.NotEmpty(t, inspection.Stored.InstanceID)
	assert.True(t, inspection.State.ReloadPending)
}

func TestInspect_MissingFile(t *testing.T) {
	f := newFixture(t)
	_, err := f.app.Inspect(context.Background(), "/out/none.blob")
	require.Error(t, err)
}
