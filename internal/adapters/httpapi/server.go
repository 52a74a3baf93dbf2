package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server serves the JSON API over HTTP.
type Server struct {
	engine *gin.Engine
	srv    *http.Server
	logger *zap.Logger
	addr   string
}

// NewServer creates a new HTTP server with all routes registered.
func NewServer(addr string, handler *Handler, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(CORSMiddleware())
	handler.RegisterRoutes(engine)

	return &Server{
		engine: engine,
		logger: logger,
		addr:   addr,
	}
}

// Start begins serving requests in a background goroutine.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	s.logger.Info("HTTP server starting", zap.String("address", s.addr))

	go func() {
		if err := s.srv.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("HTTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
