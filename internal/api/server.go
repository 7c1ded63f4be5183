package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sheetdesk/internal"
	"sheetdesk/internal/metrics"
	"sheetdesk/ports"
)

// Options holds the collaborators and limits of a Server
type Options struct {
	Users          ports.UserRepository
	Reader         ports.WorkbookReader
	Logger         *internal.Logger
	MaxUploadBytes int64
	// MetricsPath enables the Prometheus route when non-empty
	MetricsPath string
}

// Server is the HTTP API: health, registration, login and spreadsheet upload
type Server struct {
	engine         *gin.Engine
	users          ports.UserRepository
	reader         ports.WorkbookReader
	logger         *internal.Logger
	maxUploadBytes int64
	metricsPath    string
}

// NewServer creates the API server and registers its routes
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = internal.NewNopLogger()
	}

	s := &Server{
		engine:         gin.New(),
		users:          opts.Users,
		reader:         opts.Reader,
		logger:         logger,
		maxUploadBytes: opts.MaxUploadBytes,
		metricsPath:    opts.MetricsPath,
	}
	// Uploads are parsed in memory; nothing spills to temp files below the body cap.
	s.engine.MaxMultipartMemory = opts.MaxUploadBytes

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handleIndex)

	auth := s.engine.Group("/api/auth")
	auth.POST("/register", s.handleRegister)
	auth.POST("/login", s.handleLogin)

	files := s.engine.Group("/api/files")
	files.POST("/upload", s.handleUpload)

	if s.metricsPath != "" {
		s.engine.GET(s.metricsPath, gin.WrapH(metrics.Handler()))
	}
}

// Handler returns the root handler. The chi chain resolves the client address
// from proxy headers and caps request bodies before gin sees the request.
func (s *Server) Handler() http.Handler {
	return chi.Chain(
		middleware.RealIP,
		middleware.RequestSize(s.maxUploadBytes),
	).Handler(s.engine)
}

// Engine exposes the gin engine, mainly for tests
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
