package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"online-llm/internal/llm"
	"online-llm/internal/middleware"
	"online-llm/pkg/log"
)

// Generator is the generation surface the gateway exposes. Satisfied by
// *llm.Wrapper.
type Generator interface {
	GenerateComplete(ctx context.Context, prompt string, opts llm.Options) (string, error)
	GenerateStream(ctx context.Context, prompt string, opts llm.Options) <-chan llm.StreamChunk
	Model() string
}

// ModelLister returns the names of generation-capable models.
type ModelLister func(ctx context.Context) ([]string, error)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// LLM domain
	generator      Generator
	listModels     ModelLister
	requestTimeout time.Duration

	// Cross-cutting
	mw          middleware.Middleware
	modelsCache *expirable.LRU[string, []string]
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Generator  Generator
	ListModels ModelLister

	// RequestTimeout bounds one generation request at the edge; the
	// wrapper itself imposes no timeout. Zero means no bound.
	RequestTimeout time.Duration

	// RateLimitPerMin bounds each client's request rate; zero disables.
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		generator:      cfg.Generator,
		listModels:     cfg.ListModels,
		requestTimeout: cfg.RequestTimeout,
		mw:             middleware.New(logger, cfg.RateLimitPerMin),
		modelsCache:    expirable.NewLRU[string, []string](1, nil, modelsCacheTTL),
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
	if srv.generator == nil {
		return errors.New("generator is required")
	}
	if srv.listModels == nil {
		return errors.New("model lister is required")
	}
	return nil
}
