package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/tron-walletconnect/internal/config"
	"github/chapool/tron-walletconnect/internal/metrics"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

type Router struct {
	Routes             []*echo.Route
	Root               *echo.Group
	Management         *echo.Group
	APIV1WalletConnect *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with InitNewServer, which creates the components in the right order.
// To add a new component, declare it in this struct and create it in InitNewServer.
//
// Echo and Router are initialized with router.Init(s) afterwards.
type Server struct {
	Echo   *echo.Echo
	Router *Router

	Config        config.Server
	Metrics       *metrics.Service
	WalletConnect *walletconnect.Service
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

// InitNewServer returns a new Server instance with all components besides echo initialized.
func InitNewServer(config config.Server) (*Server, error) {
	s := NewServer(config)

	if err := s.InitMetrics(); err != nil {
		return nil, err
	}

	if err := s.InitWalletConnect(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) InitMetrics() error {
	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("failed to init metrics: %w", err)
	}

	s.Metrics = m

	return nil
}

// InitWalletConnect needs InitMetrics to have run, broadcast and reconstruct outcomes are recorded there.
func (s *Server) InitWalletConnect() error {
	opts := []walletconnect.Option{}
	if s.Metrics != nil {
		opts = append(opts, walletconnect.WithRecorder(s.Metrics))
	}

	wc, err := walletconnect.NewService(s.Config.Profiles(), s.Config.Tron.DefaultNetwork, opts...)
	if err != nil {
		return fmt.Errorf("failed to init walletconnect service: %w", err)
	}

	s.WalletConnect = wc

	return nil
}

func (s *Server) Ready() bool {
	if s.Echo == nil || s.Router == nil || s.Metrics == nil || s.WalletConnect == nil {
		log.Debug().Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
