package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()
	ctx := context.Background()

	sess, err := s.Create(ctx, 42, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 42, sess.UserID)

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, 42, got.UserID)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()

	got, err := s.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_GetExpired(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()
	ctx := context.Background()

	sess, err := s.Create(ctx, 1, -time.Minute)
	require.NoError(t, err)

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "expired session should not be returned")
}

func TestMemoryStore_DeleteIdempotent(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()
	ctx := context.Background()

	sess, err := s.Create(ctx, 7, time.Hour)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, sess.ID))
	// deleting twice is not an error
	require.NoError(t, s.Delete(ctx, sess.ID))

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_DistinctIDs(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()
	ctx := context.Background()

	a, err := s.Create(ctx, 1, time.Hour)
	require.NoError(t, err)
	b, err := s.Create(ctx, 1, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
