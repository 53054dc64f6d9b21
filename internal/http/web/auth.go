package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zrashid/salahboard/internal/db"
	"github.com/zrashid/salahboard/internal/http/middleware"
	"github.com/zrashid/salahboard/internal/model"
	"github.com/zrashid/salahboard/internal/session"
)

type AccountManager struct {
	secretKey  string
	store      db.Store
	sessions   session.Store
	bcryptCost int
	sessionTTL time.Duration
}

func NewAccountManager(secretKey string, store db.Store, sessions session.Store, bcryptCost int, sessionTTL time.Duration) *AccountManager {
	return &AccountManager{
		secretKey:  secretKey,
		store:      store,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		sessionTTL: sessionTTL,
	}
}

// AuthPublicModule mounts the register and login pages.
func AuthPublicModule(ctl *AccountManager) Module {
	return ModuleFunc(func(c *Controller) {
		c.GET("/register", ctl.showRegister)
		c.POST("/register", ctl.register)
		c.GET("/login", ctl.showLogin)
		c.POST("/login", ctl.login)
	})
}

// AuthSessionModule mounts logout (session required).
func AuthSessionModule(ctl *AccountManager) Module {
	return ModuleFunc(func(c *Controller) {
		c.GET("/logout", ctl.logout)
	})
}

// GET /register
func (a *AccountManager) showRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Flash": popFlash(c)})
}

// POST /register
func (a *AccountManager) register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"Flash": "Username and password are required"})
		return
	}

	hashed, err := middleware.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Flash": "Something went wrong, please try again"})
		return
	}

	if _, err := a.store.CreateUser(username, hashed); err != nil {
		if errors.Is(err, model.ErrDuplicateUsername) {
			log.Warn().Str("username", username).Msg("register username already taken")
			c.HTML(http.StatusConflict, "register.html", gin.H{"Flash": "Username already taken, please pick another"})
			return
		}
		log.Error().Err(err).Msg("failed to create user")
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Flash": "Something went wrong, please try again"})
		return
	}

	setFlash(c, "Account created! Please login.")
	c.Redirect(http.StatusFound, "/login")
}

// GET /login
func (a *AccountManager) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": popFlash(c)})
}

// POST /login
func (a *AccountManager) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	// Unknown username and wrong password take the same path so a caller
	// cannot tell which one failed.
	user, err := a.store.GetUserByUsername(username)
	if err != nil || !middleware.CheckPassword(user.PasswordHash, password) {
		if err != nil && !errors.Is(err, model.ErrUserNotFound) {
			log.Error().Err(err).Msg("login user lookup failed")
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Flash": "Login failed"})
		return
	}

	sess, err := a.sessions.Create(c.Request.Context(), user.ID, a.sessionTTL)
	if err != nil {
		log.Error().Err(err).Msg("failed to create session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Flash": "Something went wrong, please try again"})
		return
	}

	token, err := middleware.SignSessionToken(sess, a.secretKey)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Flash": "Something went wrong, please try again"})
		return
	}

	middleware.SetSessionCookie(c, token, a.sessionTTL)
	c.Redirect(http.StatusFound, "/")
}

// GET /logout
func (a *AccountManager) logout(c *gin.Context) {
	if sid, ok := middleware.SessionID(c); ok {
		if err := a.sessions.Delete(c.Request.Context(), sid); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}
