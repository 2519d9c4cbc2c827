package tron

import (
	"strings"

	"github.com/pkg/errors"
)

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkNile    Network = "nile"
)

const (
	DefaultMainnetURL = "https://api.trongrid.io"
	DefaultNileURL    = "https://nile.trongrid.io"
)

var SupportedNetworks = []Network{
	NetworkMainnet,
	NetworkNile,
}

func (n Network) IsValid() bool {
	for _, network := range SupportedNetworks {
		if n == network {
			return true
		}
	}
	return false
}

func (n Network) String() string {
	return string(n)
}

// ParseNetwork maps user input onto a supported network. "testnet" is an alias of nile.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case "testnet":
		return NetworkNile, nil
	default:
		if n.IsValid() {
			return n, nil
		}
		return "", errors.Errorf("unsupported network: %s", s)
	}
}

// Profile is the endpoint configuration of one network.
type Profile struct {
	Network     Network
	FullNodeURL string
	APIKey      string
}

// DefaultProfiles returns the public TronGrid endpoints.
func DefaultProfiles() map[Network]Profile {
	return map[Network]Profile{
		NetworkMainnet: {Network: NetworkMainnet, FullNodeURL: DefaultMainnetURL},
		NetworkNile:    {Network: NetworkNile, FullNodeURL: DefaultNileURL},
	}
}
