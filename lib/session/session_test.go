package session

import (
	"context"
	"testing"
	"time"

	"broilink-backend/lib/utils/kvstore"

	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	ctx := context.Background()
	provider := NewInstance(kvstore.NewMemory())

	data, err := provider.Get(ctx, "s-1")
	require.NoError(t, err)
	require.Nil(t, data)

	require.NoError(t, provider.Create(ctx, "s-1", Data{UserID: "u-1", Role: "Owner", CreatedAt: time.Now()}, time.Hour))
	data, err = provider.Get(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Equal(t, "u-1", data.UserID)

	require.NoError(t, provider.Delete(ctx, "s-1"))
	data, err = provider.Get(ctx, "s-1")
	require.NoError(t, err)
	require.Nil(t, data)

	require.Error(t, provider.Create(ctx, "", Data{}, time.Hour))
}
