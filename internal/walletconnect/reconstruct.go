package walletconnect

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/tron-walletconnect/internal/tron"
)

// ApproveFeeLimit is the fee ceiling, in sun, of reconstructed approve calls.
const ApproveFeeLimit int64 = 200_000_000

// ReconstructRequest describes the approve call a detached signature was made for.
type ReconstructRequest struct {
	Signature       string `json:"signature"`
	ContractAddress string `json:"contract_address"`
	SpenderAddress  string `json:"spender_address"`
	Amount          string `json:"amount"`
	OwnerAddress    string `json:"owner_address"`
}

// Reconstruct rebuilds the unsigned approve(address,uint256) transaction through
// the node and attaches the detached signature. Unlike Broadcast it returns
// every failure to the caller.
func (s *Service) Reconstruct(ctx context.Context, req ReconstructRequest, network tron.Network) (*tron.Transaction, error) {
	network = s.resolveNetwork(network)

	tx, err := s.reconstruct(ctx, req, network)
	s.recorder.ObserveReconstruct(network, err)

	return tx, err
}

func (s *Service) reconstruct(ctx context.Context, req ReconstructRequest, network tron.Network) (*tron.Transaction, error) {
	signature := strings.TrimSpace(req.Signature)
	if signature == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "signature is required")
	}

	contract, err := tron.ParseAddress(req.ContractAddress)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRequest, "contract address: %v", err)
	}

	spender, err := tron.ParseAddress(req.SpenderAddress)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRequest, "spender address: %v", err)
	}

	owner, err := tron.ParseAddress(req.OwnerAddress)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRequest, "owner address: %v", err)
	}

	amount, err := tron.ParseAmount(req.Amount)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRequest, "%v", err)
	}

	parameter, err := tron.EncodeApproveParameters(spender, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode approve parameters")
	}

	client, err := s.newClient(network)
	if err != nil {
		return nil, err
	}

	tx, err := client.TriggerSmartContract(ctx, &tron.TriggerSmartContractRequest{
		OwnerAddress:     owner.String(),
		ContractAddress:  contract.String(),
		FunctionSelector: tron.ApproveSignature,
		Parameter:        parameter,
		FeeLimit:         ApproveFeeLimit,
		CallValue:        0,
		Visible:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build approve transaction")
	}

	tx.Signature = append(tx.Signature, signature)

	log.Debug().
		Str("component", "reconstructor").
		Str("network", network.String()).
		Str("tx_id", tx.TxID).
		Int("signatures", len(tx.Signature)).
		Msg("Approve transaction reconstructed")

	return tx, nil
}
