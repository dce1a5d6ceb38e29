// Package server wires the HTTP surface: CRUD over the item store, the demo
// login flow, the protected endpoint, and the operational endpoints.
package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/user/demo-dashboard-api/internal/auth"
	"github.com/user/demo-dashboard-api/internal/config"
	"github.com/user/demo-dashboard-api/internal/store"
)

// Server holds the handler dependencies. All state is injected; nothing is
// process-global.
type Server struct {
	cfg    *config.Config
	store  *store.Store
	tokens *auth.Service
	logger *slog.Logger

	startTime time.Time
	shutdown  func() // triggers graceful stop; nil when not wired

	// Simulated task delays are fields so tests can shorten them.
	heavyTaskDelay time.Duration
	lightTaskDelay time.Duration
}

// New creates a Server. shutdown may be nil, in which case the shutdown
// endpoint reports a server misconfiguration.
func New(cfg *config.Config, st *store.Store, tokens *auth.Service, logger *slog.Logger, shutdown func()) *Server {
	return &Server{
		cfg:            cfg,
		store:          st,
		tokens:         tokens,
		logger:         logger,
		startTime:      time.Now(),
		shutdown:       shutdown,
		heavyTaskDelay: 2 * time.Second,
		lightTaskDelay: 200 * time.Millisecond,
	}
}

// Router builds the Gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetHTMLTemplate(indexTemplate)

	r.GET("/", s.handleIndex)

	api := r.Group("/api")
	{
		api.GET("/version", s.handleVersion)
		api.GET("/health", s.handleHealth)
		api.GET("/metrics", s.handleMetrics)

		api.POST("/auth/login", s.handleLogin)
		api.GET("/secure", auth.Middleware(s.tokens), s.handleSecure)

		api.GET("/items", s.handleListItems)
		api.POST("/items", s.handleCreateItem)
		api.GET("/items/:id", s.handleGetItem)
		api.PUT("/items/:id", s.handleUpdateItem)
		api.DELETE("/items/:id", s.handleDeleteItem)

		api.POST("/simulate-task", s.handleSimulateTask)
		api.POST("/shutdown", s.handleShutdown)
	}

	return r
}

// requestLogger logs each request with method, path, status, and latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Request = c.Request.WithContext(auth.WithRequestID(c.Request.Context(), requestID))

		c.Next()

		if s.logger == nil {
			return
		}
		s.logger.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
