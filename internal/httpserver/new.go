package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
	"smart-task-manager/internal/task/usecase"
	"smart-task-manager/pkg/llmprovider"
	"smart-task-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	verifier       middleware.TokenVerifier
	requestsPerMin int
	burst          int

	// Task domain
	db          *sql.DB
	llm         llmprovider.Provider
	calendar    usecase.Calendar
	taskOptions usecase.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Auth and rate limiting
	Verifier       middleware.TokenVerifier
	RequestsPerMin int
	Burst          int

	// Task domain
	DB          *sql.DB
	LLM         llmprovider.Provider
	Calendar    usecase.Calendar // optional
	TaskOptions usecase.Options
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		verifier:       cfg.Verifier,
		requestsPerMin: cfg.RequestsPerMin,
		burst:          cfg.Burst,
		db:             cfg.DB,
		llm:            cfg.LLM,
		calendar:       cfg.Calendar,
		taskOptions:    cfg.TaskOptions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.verifier == nil {
		return errors.New("token verifier is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.llm == nil {
		return errors.New("llm provider is required")
	}
	return nil
}
