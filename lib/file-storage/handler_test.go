package filestorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	storage := NewMemory()

	obj, err := storage.Get(ctx, "profile/u1")
	require.NoError(t, err)
	require.Nil(t, obj)

	file := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, storage.Upload(ctx, "profile/u1", file, "image/png"))
	file[1] = 'X'

	obj, err = storage.Get(ctx, "profile/u1")
	require.NoError(t, err)
	require.Equal(t, "image/png", obj.ContentType)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, obj.Body)
}
