package handler

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// ListenAndServe runs the server until ctx is canceled, then drains open connections.
func ListenAndServe(ctx context.Context, addr string, h *Handler) error {
	srv := &fasthttp.Server{
		Handler:      h.Serve,
		Name:         "benefits-engine",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(addr)
	}()

	h.log.Info("Benefits engine listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.ShutdownWithContext(shutdownCtx)
}
