// exposes a Store interface that is passed to handlers
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/zrashid/salahboard/internal/model"
)

type Store interface {
	CreateUser(username, passwordHash string) (int, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
