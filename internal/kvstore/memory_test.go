package kvstore

import (
	"context"
	"testing"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Remove(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// removing an absent key is not an error
	require.NoError(t, s.Remove(ctx, "k"))
}

func TestMemoryStore_Quota(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStoreWithQuota(10)

	require.NoError(t, s.Set(ctx, "k", "12345")) // 6 bytes

	err := s.Set(ctx, "k2", "123456789")
	assert.ErrorIs(t, err, common.ErrQuotaExceeded)

	// the earlier entry is untouched
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "12345", v)

	// overwriting within quota is fine and frees space on shrink
	require.NoError(t, s.Set(ctx, "k", "1"))
	require.NoError(t, s.Set(ctx, "k2", "123456"))
}

func TestMemoryStore_QuotaFreedByRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStoreWithQuota(8)

	require.NoError(t, s.Set(ctx, "a", "1234567"))
	assert.ErrorIs(t, s.Set(ctx, "b", "1"), common.ErrQuotaExceeded)

	require.NoError(t, s.Remove(ctx, "a"))
	require.NoError(t, s.Set(ctx, "b", "1"))
}
