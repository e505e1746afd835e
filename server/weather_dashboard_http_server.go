package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type WeatherDashboardHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	addr            string
	shutdownTimeout time.Duration
}

func NewWeatherDashboardHttpServer(router *Router, muxRouter *mux.Router, addr string, shutdownTimeout time.Duration) *WeatherDashboardHttpServer {
	return &WeatherDashboardHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *WeatherDashboardHttpServer) Start() error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[Server] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stop:
	}
	log.Println("[Server] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("[Server] Server exiting")
	return nil
}
