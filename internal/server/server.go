// internal/server/server.go
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mwiater/promstats/internal/config"
)

// shutdownTimeout bounds how long in-flight requests may take after ctx is cancelled.
const shutdownTimeout = 5 * time.Second

// NewRouter wires the API routes onto a gin engine with logging and recovery.
func NewRouter(ctl Controller) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	api.POST("/summary", ctl.Summary)
	api.POST("/quantile", ctl.Quantile)
	api.POST("/variance", ctl.Variance)
	api.POST("/aggregate", ctl.Aggregate)

	return engine
}

// NewHTTPServer builds the http.Server for cfg.
func NewHTTPServer(cfg config.Config) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           NewRouter(NewController(cfg.Quantiles)),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg config.Config) error {
	srv := NewHTTPServer(cfg)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
