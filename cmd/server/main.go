package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zrashid/salahboard/internal/config"
	"github.com/zrashid/salahboard/internal/db"
	"github.com/zrashid/salahboard/internal/location"
	"github.com/zrashid/salahboard/internal/prayer"
)

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// create schema if absent
	if err := db.EnsureSchema(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db schema")
	}

	store := db.NewStore()
	sessions := InitSessions(cfg)

	resolver := location.NewResolver(cfg.GeoAPIURL, cfg.UpstreamTimeout)
	prayers := prayer.NewClient(cfg.PrayerAPIURL, cfg.UpstreamTimeout)

	r := gin.Default()
	RegisterRoutes(r, cfg, store, sessions, resolver, prayers, LoadTemplates(cfg.TemplatesGlob))

	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
