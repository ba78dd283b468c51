package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"collab-command-engine/internal/middleware"
	parserHTTP "collab-command-engine/internal/parser/delivery/http"
	"collab-command-engine/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Parser domain
	parserHandler parserHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Parse requests per client per minute; 0 disables rate limiting.
	RateLimitPerMin int

	ParserHandler parserHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            middleware.New(logger, cfg.RateLimitPerMin),
		parserHandler: cfg.ParserHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parserHandler == nil {
		return errors.New("parser handler is required")
	}
	return nil
}

// Run blocks serving HTTP until the listener fails.
func (srv *HTTPServer) Run() error {
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
