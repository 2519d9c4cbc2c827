package test

import (
	"context"
	"testing"

	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/api/router"
	"github/chapool/tron-walletconnect/internal/config"
	"github/chapool/tron-walletconnect/internal/tron"
)

// WithTestServer returns a fully configured server whose networks all point at
// a fresh fake TronGrid node.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerWithNode(t, func(s *api.Server, _ *TronNode) {
		t.Helper()
		closure(s)
	})
}

// WithTestServerWithNode additionally hands out the fake node to program replies
// and inspect received requests.
func WithTestServerWithNode(t *testing.T, closure func(s *api.Server, node *TronNode)) {
	t.Helper()

	node := NewTronNode(t)

	WithTestServerConfigurable(t, ConfigForNode(node), func(s *api.Server) {
		t.Helper()
		closure(s, node)
	})
}

// ConfigForNode returns the service config from env with every network routed to node.
func ConfigForNode(node *TronNode) config.Server {
	cfg := config.DefaultServiceConfigFromEnv()

	cfg.Tron.DefaultNetwork = tron.NetworkNile
	cfg.Tron.MainnetURL = node.URL
	cfg.Tron.NileURL = node.URL
	cfg.Tron.APIKey = ""

	return cfg
}

// WithTestServerConfigurable runs closure against a server built from config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.InitNewServer(config)
	if err != nil {
		t.Fatalf("failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("failed to init router: %v", err)
	}

	closure(s)

	// echo is never started in tests, Shutdown only releases its resources
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		t.Fatalf("failed to shutdown server: %v", errs)
	}
}
