package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/status-im/solana-price-feed/interfaces"
)

type Server struct {
	port      string
	priceFeed interfaces.PriceFeed
	logger    *zap.Logger
	server    *http.Server
	listener  net.Listener
	startedAt time.Time
}

func New(port string, priceFeed interfaces.PriceFeed, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		port:      port,
		priceFeed: priceFeed,
		logger:    logger,
	}
}

// Router builds the HTTP routes served by the proxy
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/v1/prices", s.handlePrices).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/tokens", s.handleTokenList).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/tokens/{address}", s.handleTokenOverview).Methods(http.MethodGet)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// Start implements core.Interface. It returns once the listener is bound.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return err
	}

	s.listener = listener
	s.startedAt = time.Now()
	s.server = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("server starting", zap.String("addr", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", zap.Error(err))
		}
	}()

	return nil
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error("error shutting down server", zap.Error(err))
	}
}
