package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zrashid/salahboard/internal/db"
	"github.com/zrashid/salahboard/internal/model"
	"github.com/zrashid/salahboard/internal/session"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// SignSessionToken signs a token embedding the server-side session id in
// the "sid" claim and the user id in "sub". The cookie is only proof of
// possession; the session itself lives in the session store so logout
// actually invalidates it.
func SignSessionToken(sess session.Session, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sess.ID,
		"sub": sess.UserID,
		"exp": sess.ExpiresAt.Unix(),
	})
	return token.SignedString([]byte(secret))
}

// parseSessionToken verifies the token signature and returns the session id.
func parseSessionToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("invalid sid claim")
	}
	return sid, nil
}

// SetSessionCookie writes the signed token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// RequireSession checks the session cookie, verifies its signature, loads
// the session and its user, and sets "currentUser" and "sessionID" in the
// context. Browsers get a 302 to /login rather than a 401 because every
// protected route here is an HTML page.
func RequireSession(secret string, sessions session.Store, store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirectLogin := func() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		}

		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			redirectLogin()
			return
		}

		sid, err := parseSessionToken(cookie, secret)
		if err != nil {
			redirectLogin()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), sid)
		if err != nil {
			log.Error().Err(err).Msg("session lookup failed")
			redirectLogin()
			return
		}
		if sess == nil {
			redirectLogin()
			return
		}

		user, err := store.GetUserByID(sess.UserID)
		if err != nil {
			if !errors.Is(err, model.ErrUserNotFound) {
				log.Error().Err(err).Int("user_id", sess.UserID).Msg("user lookup failed")
			}
			redirectLogin()
			return
		}

		c.Set("currentUser", user)
		c.Set("sessionID", sess.ID)
		c.Next()
	}
}

// SessionID retrieves the current session id from the Gin context.
func SessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
