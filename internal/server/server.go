package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// Server exposes the off-chain helper routes (risk analysis, payment
// gateway, metadata pinning) over HTTP so browser front ends never hold the
// gateway or pinning credentials. On-chain reads and writes are not proxied:
// clients talk to the RPC endpoint directly.
type Server struct {
	cfg      *config.RuntimeConfig
	log      *slog.Logger
	analyze  *usecase.AnalyzeDescription
	payment  *usecase.RequestPayment
	history  *usecase.PaymentHistory
	metadata usecase.MetadataStore

	http *http.Server
}

// NewServer wires the helper routes.
func NewServer(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	analyze *usecase.AnalyzeDescription,
	payment *usecase.RequestPayment,
	history *usecase.PaymentHistory,
	metadata usecase.MetadataStore,
) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		analyze:  analyze,
		payment:  payment,
		history:  history,
		metadata: metadata,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if !s.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.POST("/guardian", s.handleGuardian)
		api.POST("/idrx/mint-request", s.handleMintRequest)
		api.GET("/idrx/transaction-history", s.handleTransactionHistory)
		api.POST("/ipfs/upload-metadata", s.handleUploadMetadata)
		api.POST("/ipfs/upload-image", s.handleUploadImage)
	}
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.ListenAddr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
