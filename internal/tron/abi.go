package tron

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

const ApproveSignature = "approve(address,uint256)"

var approveArguments = mustArguments("address", "uint256")

func mustArguments(types ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(types))
	for _, t := range types {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args
}

// MethodID returns the 4 byte selector of a function signature.
func MethodID(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

// ParseAmount parses a base 10 token amount in the smallest unit.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("amount is required")
	}

	amount, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", s)
	}
	return amount, nil
}

// EncodeApproveParameters ABI encodes the arguments of approve(address,uint256),
// without the selector, as the node expects in the `parameter` field.
func EncodeApproveParameters(spender Address, amount *uint256.Int) (string, error) {
	if amount == nil {
		return "", errors.New("amount is required")
	}

	packed, err := approveArguments.Pack(spender.EVM(), amount.ToBig())
	if err != nil {
		return "", errors.Wrap(err, "failed to pack approve arguments")
	}

	return hex.EncodeToString(packed), nil
}
