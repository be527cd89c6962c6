// Package server exposes the tabular import validator over HTTP. Every
// route is JSON; uploads are held in an in-memory session between the
// sniffing and the analysis call.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ImplantacaoMW/datacheckai/database"
	"github.com/ImplantacaoMW/datacheckai/internal/config"
	"github.com/ImplantacaoMW/datacheckai/mapping"
	"github.com/ImplantacaoMW/datacheckai/server/middleware"
)

// Server bundles the gin router, the sample store and the upload
// sessions behind one Start/Shutdown pair.
type Server struct {
	cfg        *config.Config
	handler    *Handler
	router     *gin.Engine
	httpServer *http.Server
}

// New builds a fully routed server. The sample store is owned by the
// caller and must outlive the server.
func New(cfg *config.Config, store *database.SampleStore) *Server {
	h := &Handler{
		store:    store,
		mapper:   mapping.NewMapper(cfg.HeaderThreshold, cfg.ContentThreshold),
		sessions: newSessionStore(cfg.SessionTTL),
		maxBytes: cfg.MaxUploadBytes,
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	router.Use(gin.Recovery())

	s := &Server{cfg: cfg, handler: h, router: router}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	api.GET("/health", s.handler.HandleHealth)

	validador := api.Group("/validador/:tipo")
	validador.POST("/upload", s.handler.HandleUpload)
	validador.POST("/analisar", s.handler.HandleAnalyze)

	amostras := api.Group("/amostras")
	amostras.GET("", s.handler.HandleSamples)
	amostras.POST("/busca", s.handler.HandleSampleSearch)
	amostras.POST("/excluir", s.handler.HandleSampleDelete)
}

// ServeHTTP implements http.Handler so tests can drive the router
// directly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start blocks serving HTTP until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("servidor iniciando na porta %s", s.cfg.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("erro ao iniciar o servidor: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	log.Println("encerrando o servidor...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("erro ao encerrar o servidor: %w", err)
	}
	log.Println("servidor encerrado")
	return nil
}
