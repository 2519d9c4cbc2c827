package tron

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const (
	// AddressPrefix is the version byte of every mainnet and testnet address.
	AddressPrefix byte = 0x41
	AddressLength      = 21
)

var ErrInvalidAddress = errors.New("invalid tron address")

// Address is a 21 byte TRON account or contract address.
type Address [AddressLength]byte

// ParseAddress accepts base58check (T...) or hex (41..., optional 0x) notation.
func ParseAddress(s string) (Address, error) {
	var addr Address

	s = strings.TrimSpace(s)
	if s == "" {
		return addr, errors.Wrap(ErrInvalidAddress, "empty address")
	}

	if strings.HasPrefix(s, "T") {
		payload, version, err := base58.CheckDecode(s)
		if err != nil {
			return addr, errors.Wrapf(ErrInvalidAddress, "%s: %v", s, err)
		}
		if version != AddressPrefix || len(payload) != common.AddressLength {
			return addr, errors.Wrapf(ErrInvalidAddress, "%s: unexpected version or length", s)
		}

		addr[0] = version
		copy(addr[1:], payload)

		return addr, nil
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return addr, errors.Wrapf(ErrInvalidAddress, "%s: %v", s, err)
	}
	if len(raw) != AddressLength || raw[0] != AddressPrefix {
		return addr, errors.Wrapf(ErrInvalidAddress, "%s: expected %d bytes with 0x41 prefix", s, AddressLength)
	}

	copy(addr[:], raw)

	return addr, nil
}

// String returns the base58check notation.
func (a Address) String() string {
	return base58.CheckEncode(a[1:], a[0])
}

// Hex returns the 42 character hex notation starting with 41.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// EVM drops the prefix byte, which is how TVM contracts see addresses.
func (a Address) EVM() common.Address {
	return common.BytesToAddress(a[1:])
}
