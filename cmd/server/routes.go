package main

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zrashid/salahboard/internal/config"
	"github.com/zrashid/salahboard/internal/db"
	"github.com/zrashid/salahboard/internal/http/web"
	"github.com/zrashid/salahboard/internal/location"
	"github.com/zrashid/salahboard/internal/prayer"
	"github.com/zrashid/salahboard/internal/session"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	store db.Store,
	sessions session.Store,
	resolver *location.Resolver,
	prayers *prayer.Client,
	tmpl *template.Template,
) {
	r.SetHTMLTemplate(tmpl)

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	accounts := web.NewAccountManager(cfg.SecretKey, store, sessions, cfg.BcryptCost, cfg.SessionTTL)
	pages := web.NewPrayerPages(resolver, prayers, cfg.PrayerMethod)

	// public routes first: register and login must stay reachable
	web.MountGroup(r, web.GroupConfig{
		Prefix: "/",
		Auth:   false,
	},
		web.AuthPublicModule(accounts),
	)

	// everything else requires an active session
	web.MountGroup(r, web.GroupConfig{
		Prefix:    "/",
		Auth:      true,
		SecretKey: cfg.SecretKey,
		Sessions:  sessions,
		Users:     store,
	},
		web.PagesModule(pages),
		web.AuthSessionModule(accounts),
	)
}
