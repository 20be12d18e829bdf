// Package server exposes session-scoped graphs over HTTP.
//
// Every client works on its own session graph; the long-lived graph lives
// in a Store and is only read (to seed a session) or replaced (on save).
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/internal/session"
)

// Store is the persistence the server needs. repository.Repository
// satisfies it.
type Store interface {
	Load(ctx context.Context) (*core.Graph, error)
	Save(ctx context.Context, g *core.Graph) error
}

// Server routes HTTP requests to session graphs.
type Server struct {
	store    Store
	sessions *session.Manager
	log      *zap.Logger
	opts     []core.GraphOption
	engine   *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithGraphOptions applies opts to graphs built from uploads and empty
// sessions.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(s *Server) { s.opts = append(s.opts, opts...) }
}

// New builds the router. store may be nil, in which case seeding from and
// saving to the repository fail with 503.
func New(store Store, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		store:    store,
		sessions: sessions,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		s.sessions = session.NewManager(0)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))

	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	sg := r.Group("/sessions")
	sg.POST("", s.createSession)
	sg.DELETE("/:id", s.deleteSession)
	sg.GET("/:id/graph", s.withSession(s.getGraph))
	sg.POST("/:id/edges", s.withSession(s.addEdge))
	sg.GET("/:id/path", s.withSession(s.findPath))
	sg.GET("/:id/components", s.withSession(s.components))
	sg.GET("/:id/stats", s.withSession(s.stats))
	sg.GET("/:id/mst", s.withSession(s.spanningTree))
	sg.POST("/:id/save", s.withSession(s.save))
	sg.GET("/:id/export", s.withSession(s.export))

	s.engine = r

	return s
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler { return s.engine }

// Sessions returns the session manager backing the server.
func (s *Server) Sessions() *session.Manager { return s.sessions }

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()),
		}
		if id := c.Param("id"); id != "" {
			fields = append(fields, zap.String("session", id))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
