package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zrashid/salahboard/internal/db"
	"github.com/zrashid/salahboard/internal/http/middleware"
	"github.com/zrashid/salahboard/internal/session"
)

// Module is a pluggable feature that attaches its endpoints to a Controller
// (a gin group).
type Module interface {
	Mount(c *Controller)
}

// ModuleFunc lets you define a Module with a simple function.
type ModuleFunc func(c *Controller)

func (f ModuleFunc) Mount(c *Controller) { f(c) }

type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h gin.HandlerFunc)  { c.Group.GET(path, h) }
func (c *Controller) POST(path string, h gin.HandlerFunc) { c.Group.POST(path, h) }

// GroupConfig tells the web package how to mount a group.
type GroupConfig struct {
	Prefix     string
	Auth       bool
	SecretKey  string        // required if Auth == true
	Sessions   session.Store // required if Auth == true
	Users      db.Store      // required if Auth == true
	Middleware []gin.HandlerFunc
}

// MountGroup mounts one or more Modules under a prefix with optional
// session enforcement.
func MountGroup(r *gin.Engine, cfg GroupConfig, modules ...Module) {
	grp := r.Group(cfg.Prefix)

	for _, mw := range cfg.Middleware {
		grp.Use(mw)
	}
	if cfg.Auth {
		if cfg.SecretKey == "" || cfg.Sessions == nil || cfg.Users == nil {
			log.Fatal().Msg("web.MountGroup: Auth enabled but secret, sessions, or users missing")
		}
		grp.Use(middleware.RequireSession(cfg.SecretKey, cfg.Sessions, cfg.Users))
	}

	controller := &Controller{Group: grp}

	for _, m := range modules {
		m.Mount(controller)
	}
}
