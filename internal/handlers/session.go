package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"food_ordering/internal/models"
	"food_ordering/internal/redis"

	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
)

const (
	sessionCookieName = "session_token"
	sessionCookieAge  = 7 * 86400 // seconds
	contextTokenKey   = "session_token"

	flashTTL = time.Hour
)

// sessionToken returns the opaque per-browser token, minting a cookie on
// first contact. The token itself carries no data; everything lives behind
// it in redis.
func sessionToken(c *gin.Context) string {
	if v, ok := c.Get(contextTokenKey); ok {
		return v.(string)
	}

	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		token = uuid.NewV4().String()
		c.SetCookie(sessionCookieName, token, sessionCookieAge, "/", "", false, true)
	}

	c.Set(contextTokenKey, token)
	return token
}

func addFlash(session *redis.Client, c *gin.Context, level, message string) {
	flash := models.Flash{Level: level, Message: message}
	if err := session.PushFlash(sessionToken(c), flash, flashTTL); err != nil {
		log.Printf("Failed to queue flash message: %v", err)
	}
}

func popFlashes(session *redis.Client, c *gin.Context) []models.Flash {
	flashes, err := session.PopFlashes(sessionToken(c))
	if err != nil {
		log.Printf("Failed to read flash messages: %v", err)
		return nil
	}
	return flashes
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// RequireAdmin guards the admin surface: no session flag, no entry.
func RequireAdmin(session *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := session.IsAdminSession(sessionToken(c))
		if err != nil {
			log.Printf("Failed to check admin session: %v", err)
		}
		if !ok {
			c.Redirect(http.StatusFound, "/admin-login")
			c.Abort()
			return
		}
		c.Next()
	}
}
