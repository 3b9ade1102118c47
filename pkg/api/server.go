// Package api provides the process's thin HTTP surface: liveness and
// readiness only. Management CRUD over tenants, rules, communities and
// webhook endpoints is served elsewhere; this package exists purely so the
// process is observable behind a load balancer or Kubernetes probe.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/keywatch/keywatch/pkg/database"
	"github.com/keywatch/keywatch/pkg/version"
)

// Server wraps a gin engine exposing /health and /readyz.
type Server struct {
	engine *gin.Engine
	db     *database.Client
}

// NewServer builds the HTTP server. ginMode is passed straight to
// gin.SetMode (e.g. "release" in production, "debug" in dev).
func NewServer(db *database.Client, ginMode string) *Server {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}
	s := &Server{engine: gin.Default(), db: db}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/readyz", s.handleReadyz)
}

// handleHealth reports process liveness and the build version; it does not
// touch the database, unlike /readyz.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Full(),
	})
}

// handleReadyz checks the database is reachable, so a load balancer can
// stop routing traffic to an instance that has lost its connection.
func (s *Server) handleReadyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"database": dbHealth,
	})
}

// Run starts the HTTP server, blocking until the listener fails; it takes
// no context and does not stop on its own.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
