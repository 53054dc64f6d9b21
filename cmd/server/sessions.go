package main

import (
	"github.com/rs/zerolog/log"

	"github.com/zrashid/salahboard/internal/config"
	"github.com/zrashid/salahboard/internal/session"
)

// InitSessions selects the configured session backend. Redis when an
// address is set, otherwise a process-local table.
func InitSessions(cfg *config.Config) session.Store {
	if cfg.RedisAddress != "" {
		log.Info().Str("address", cfg.RedisAddress).Msg("using Redis session store")
		return session.NewRedisStore(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	}

	log.Info().Msg("using in-memory session store")
	return session.NewMemoryStore()
}
