// Package api exposes the service layer over HTTP with gin, mirroring
// the /api/users, /api/groups and /api/teams surface.
package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"teamforge/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextUserID = "userID"

// Authenticate checks the Bearer token and stores the caller's identity
// on the request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		callerID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(contextUserID, callerID)
		c.Next()
	}
}

// RequestLogger logs one line per request the way the rest of the
// service logs, instead of gin's default writer.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}

// callerID returns the authenticated user set by Authenticate.
func callerID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

// pathID parses a UUID path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
