package db

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zrashid/salahboard/internal/model"
)

// These tests need a real PostgreSQL instance and are skipped unless
// TEST_DATABASE_URL is set.
func testStore(t *testing.T) Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, Init(dsn))
	require.NoError(t, EnsureSchema("../../migrations"))
	return NewStore()
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestCreateAndGetUser(t *testing.T) {
	store := testStore(t)
	username := uniqueName("alice")

	id, err := store.CreateUser(username, "hash")
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	byName, err := store.GetUserByUsername(username)
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)
	assert.Equal(t, "hash", byName.PasswordHash)

	byID, err := store.GetUserByID(id)
	require.NoError(t, err)
	assert.Equal(t, username, byID.Username)
}

func TestCreateUser_Duplicate(t *testing.T) {
	store := testStore(t)
	username := uniqueName("bob")

	_, err := store.CreateUser(username, "hash1")
	require.NoError(t, err)

	_, err = store.CreateUser(username, "hash2")
	assert.ErrorIs(t, err, model.ErrDuplicateUsername)
}

func TestGetUser_NotFound(t *testing.T) {
	store := testStore(t)

	_, err := store.GetUserByUsername(uniqueName("nobody"))
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = store.GetUserByID(-1)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
