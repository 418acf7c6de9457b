package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// serve runs server on ln until a signal arrives on stop, then waits up to
// drain for in-flight requests before returning.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, drain time.Duration, log *zap.Logger) error {
	done := make(chan struct{})

	go func() {
		defer close(done)
		<-stop

		log.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), drain)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("Shutdown did not drain in time", zap.Error(err))
		}
	}()

	if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	return nil
}
