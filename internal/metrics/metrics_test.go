package metrics_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tron-walletconnect/internal/metrics"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

func TestObserve(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	m.ObserveBroadcast(tron.NetworkNile, &walletconnect.BroadcastResult{Result: true, TxID: "x"})
	m.ObserveBroadcast(tron.NetworkNile, &walletconnect.BroadcastResult{Result: false})
	m.ObserveBroadcast(tron.NetworkNile, nil)
	m.ObserveReconstruct(tron.NetworkMainnet, nil)
	m.ObserveReconstruct(tron.NetworkMainnet, errors.Wrap(walletconnect.ErrInvalidRequest, "bad owner"))
	m.ObserveReconstruct(tron.NetworkMainnet, errors.New("node down"))
	m.ObserveExtract(walletconnect.KindSignatureList)

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	counts := map[string]int{}
	for _, family := range families {
		counts[family.GetName()] = len(family.GetMetric())
	}

	assert.Equal(t, 2, counts["walletconnect_broadcasts_total"])
	assert.Equal(t, 3, counts["walletconnect_reconstructions_total"])
	assert.Equal(t, 1, counts["walletconnect_extractions_total"])
}
