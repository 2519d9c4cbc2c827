package walletconnect

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github/chapool/tron-walletconnect/internal/tron"
)

// Approval carries the approve call parameters needed when the wallet only
// returned signatures.
type Approval struct {
	ContractAddress string `json:"contract_address"`
	SpenderAddress  string `json:"spender_address"`
	Amount          string `json:"amount"`
	OwnerAddress    string `json:"owner_address"`
}

type SubmitResult struct {
	BroadcastResult

	Kind               Kind `json:"kind"`
	AlreadyBroadcasted bool `json:"already_broadcasted"`
	Reconstructed      bool `json:"reconstructed"`
}

// Submit runs a wallet response through extraction and validation, then either
// reports the wallet's own broadcast, broadcasts the signed transaction, or
// reconstructs it from its signatures first. Invalid responses and
// reconstruction failures are returned as errors, broadcast failures in the result.
func (s *Service) Submit(ctx context.Context, raw json.RawMessage, approval *Approval, network tron.Network) (*SubmitResult, error) {
	p := Extract(raw)
	res := &SubmitResult{Kind: KindOf(p)}
	s.recorder.ObserveExtract(res.Kind)

	var signatures []string

	switch v := p.(type) {
	case AlreadyBroadcast:
		if !IsValid(v) {
			return nil, errors.Wrap(ErrInvalidRequest, "already broadcast marker carries no transaction id")
		}
		res.BroadcastResult = BroadcastResult{Result: true, TxID: v.TxID}
		res.AlreadyBroadcasted = true
		return res, nil
	case SignedPayload:
		if !IsValid(v) {
			return nil, errors.Wrap(ErrInvalidRequest, MsgInvalidTransaction)
		}
		res.BroadcastResult = *s.Broadcast(ctx, v, network)
		return res, nil
	case WrappedPayload:
		res.BroadcastResult = *s.Broadcast(ctx, v, network)
		return res, nil
	case DetachedSignature:
		signatures = []string{string(v)}
	case SignatureList:
		if !IsValid(v) {
			return nil, errors.Wrap(ErrInvalidRequest, "signature list is empty")
		}
		signatures = v
	case nil:
		return nil, errors.Wrap(ErrInvalidRequest, MsgMissingTransaction)
	default:
		return nil, errors.Wrap(ErrInvalidRequest, "wallet response carries no recognizable transaction")
	}

	if approval == nil {
		return nil, errors.Wrap(ErrInvalidRequest, "approval parameters are required to reconstruct from signatures")
	}

	tx, err := s.Reconstruct(ctx, ReconstructRequest{
		Signature:       signatures[0],
		ContractAddress: approval.ContractAddress,
		SpenderAddress:  approval.SpenderAddress,
		Amount:          approval.Amount,
		OwnerAddress:    approval.OwnerAddress,
	}, network)
	if err != nil {
		return nil, err
	}
	tx.Signature = append(tx.Signature, signatures[1:]...)

	res.Reconstructed = true
	res.BroadcastResult = *s.broadcastTransaction(ctx, SignedPayload{Transaction: tx}, network)

	return res, nil
}
