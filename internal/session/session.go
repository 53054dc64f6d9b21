// Package session holds the server-side session table. A session is created
// on login, looked up on every protected request, and deleted on logout.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the session table. Get returns (nil, nil) for a session that does
// not exist or has expired; Delete is idempotent.
type Store interface {
	Create(ctx context.Context, userID int, ttl time.Duration) (Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// newSessionID returns a random 128-bit hex identifier.
func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
