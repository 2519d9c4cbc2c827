package walletconnect

import (
	"github.com/pkg/errors"
	"github/chapool/tron-walletconnect/internal/tron"
)

// ErrInvalidRequest marks errors caused by the caller's input rather than the node.
var ErrInvalidRequest = errors.New("invalid request")

// Recorder receives the outcome of node interactions and of the extractions
// Submit performs.
type Recorder interface {
	ObserveBroadcast(network tron.Network, result *BroadcastResult)
	ObserveReconstruct(network tron.Network, err error)
	ObserveExtract(kind Kind)
}

type nopRecorder struct{}

func (nopRecorder) ObserveBroadcast(tron.Network, *BroadcastResult) {}
func (nopRecorder) ObserveReconstruct(tron.Network, error)          {}
func (nopRecorder) ObserveExtract(Kind)                             {}

// Service bundles the wallet-connect operations for the configured networks.
// It keeps no state between calls; every node interaction builds its own client.
type Service struct {
	profiles       map[tron.Network]tron.Profile
	defaultNetwork tron.Network
	recorder       Recorder
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewService creates a Service. Networks missing from profiles are unsupported.
func NewService(profiles map[tron.Network]tron.Profile, defaultNetwork tron.Network, opts ...Option) (*Service, error) {
	if _, ok := profiles[defaultNetwork]; !ok {
		return nil, errors.Errorf("no profile configured for default network %q", defaultNetwork)
	}

	s := &Service{
		profiles:       make(map[tron.Network]tron.Profile, len(profiles)),
		defaultNetwork: defaultNetwork,
		recorder:       nopRecorder{},
	}
	for network, profile := range profiles {
		s.profiles[network] = profile
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// DefaultNetwork is used whenever a caller passes an empty network.
func (s *Service) DefaultNetwork() tron.Network {
	return s.defaultNetwork
}

func (s *Service) resolveNetwork(network tron.Network) tron.Network {
	if network == "" {
		return s.defaultNetwork
	}
	return network
}

// newClient builds the client for a single call. Clients are never cached.
func (s *Service) newClient(network tron.Network) (*tron.Client, error) {
	profile, ok := s.profiles[network]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidRequest, "unsupported network %q", network)
	}

	client, err := tron.NewClient(profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tron client")
	}

	return client, nil
}
