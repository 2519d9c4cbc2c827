package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

const namespace = "walletconnect"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

// Service owns a private registry so that multiple servers (e.g. in tests)
// never collide on the global one.
type Service struct {
	Registry *prometheus.Registry

	broadcasts   *prometheus.CounterVec
	reconstructs *prometheus.CounterVec
	extractions  *prometheus.CounterVec
}

func New() (*Service, error) {
	registry := prometheus.NewRegistry()

	s := &Service{
		Registry: registry,
		broadcasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcasts_total",
			Help:      "Transaction broadcasts by network and outcome.",
		}, []string{"network", "outcome"}),
		reconstructs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconstructions_total",
			Help:      "Approve transaction reconstructions by network and outcome.",
		}, []string{"network", "outcome"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Wallet response extractions by resulting payload kind.",
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.broadcasts,
		s.reconstructs,
		s.extractions,
	} {
		if err := registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return s, nil
}

func (s *Service) ObserveBroadcast(network tron.Network, result *walletconnect.BroadcastResult) {
	outcome := OutcomeFailure
	if result != nil && result.Result {
		outcome = OutcomeSuccess
	}
	s.broadcasts.WithLabelValues(network.String(), outcome).Inc()
}

func (s *Service) ObserveReconstruct(network tron.Network, err error) {
	outcome := OutcomeSuccess
	switch {
	case errors.Is(err, walletconnect.ErrInvalidRequest):
		outcome = OutcomeInvalid
	case err != nil:
		outcome = OutcomeFailure
	}
	s.reconstructs.WithLabelValues(network.String(), outcome).Inc()
}

func (s *Service) ObserveExtract(kind walletconnect.Kind) {
	s.extractions.WithLabelValues(string(kind)).Inc()
}
