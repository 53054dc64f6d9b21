package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Flash messages are one-shot: set on a redirect, read and cleared on the
// next render. Gin escapes and unescapes cookie values itself.
const flashCookie = "flash"

func setFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

func popFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}
