package walletconnect

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github/chapool/tron-walletconnect/internal/tron"
)

const (
	MsgMissingTransaction = "Missing transaction data"
	MsgStringSignature    = "Expected signed transaction object, got string signature."
	MsgSignatureArray     = "Expected signed transaction object, got array of signatures."
	MsgInvalidTransaction = "Invalid transaction: missing raw_data or signature."
	MsgResultUnclear      = "Transaction broadcast result unclear"
)

// BroadcastResult is the normalized outcome of a broadcast.
type BroadcastResult struct {
	Result  bool   `json:"result"`
	TxID    string `json:"txid,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

func failed(message string) *BroadcastResult {
	return &BroadcastResult{Result: false, Message: message}
}

// Broadcast submits a signed transaction. It never returns an error: invalid
// input, transport failures and unexpected replies all end up as a failed result.
func (s *Service) Broadcast(ctx context.Context, p Payload, network tron.Network) *BroadcastResult {
	signed, reason := signedTransaction(p)
	if reason != "" {
		return failed(reason)
	}

	return s.broadcastTransaction(ctx, signed, network)
}

// signedTransaction returns the broadcastable transaction or the reason it is not one.
// Strings and arrays are rejected before a {transaction} wrapper is unwrapped,
// whatever sits inside a wrapper only needs raw_data and signatures.
func signedTransaction(p Payload) (SignedPayload, string) {
	switch v := p.(type) {
	case nil:
		return SignedPayload{}, MsgMissingTransaction
	case DetachedSignature:
		if v == "" {
			return SignedPayload{}, MsgMissingTransaction
		}
		return SignedPayload{}, MsgStringSignature
	case SignatureList:
		return SignedPayload{}, MsgSignatureArray
	case WrappedPayload:
		p = v.Inner
	}

	signed, ok := p.(SignedPayload)
	if !ok || !signed.broadcastable() {
		return SignedPayload{}, MsgInvalidTransaction
	}

	return signed, ""
}

func (s *Service) broadcastTransaction(ctx context.Context, signed SignedPayload, network tron.Network) *BroadcastResult {
	network = s.resolveNetwork(network)
	log := log.With().Str("component", "broadcaster").Str("network", network.String()).Logger()

	result := func() *BroadcastResult {
		body, err := signed.body()
		if err != nil {
			return failed(err.Error())
		}

		client, err := s.newClient(network)
		if err != nil {
			return failed(err.Error())
		}

		raw, err := client.BroadcastTransaction(ctx, body)
		if err != nil {
			log.Warn().Err(err).Msg("Broadcast request failed")
			return failed(err.Error())
		}

		log.Debug().
			Strs("contracts", signed.Transaction.ContractAddresses()).
			RawJSON("response", raw).
			Msg("Broadcast response received")

		return NormalizeBroadcastReply(raw)
	}()

	s.recorder.ObserveBroadcast(network, result)

	return result
}

type broadcastReply struct {
	Result  json.RawMessage `json:"result"`
	TxID    json.RawMessage `json:"txid"`
	Code    json.RawMessage `json:"code"`
	Message json.RawMessage `json:"message"`
}

func text(raw json.RawMessage) string {
	if !truthy(raw) {
		return ""
	}
	return scalarText(raw)
}

// NormalizeBroadcastReply maps a node reply of any shape onto a BroadcastResult.
// First match wins: explicit success flag, txid without code, txid with code,
// bare string, anything else.
func NormalizeBroadcastReply(raw json.RawMessage) *BroadcastResult {
	if isString(raw) {
		if txID := scalarText(raw); txID != "" {
			return &BroadcastResult{Result: true, TxID: txID}
		}
		return failed(MsgResultUnclear)
	}

	var reply broadcastReply
	if !isObject(raw) || json.Unmarshal(raw, &reply) != nil {
		return failed(MsgResultUnclear)
	}

	txID := text(reply.TxID)
	code := text(reply.Code)
	message := tron.DecodeMessage(text(reply.Message))

	switch {
	case string(reply.Result) == "true":
		if txID == "" {
			txID = message
		}
		return &BroadcastResult{Result: true, TxID: txID}
	case txID != "" && code == "":
		return &BroadcastResult{Result: true, TxID: txID}
	case txID != "":
		return &BroadcastResult{
			Result:  false,
			TxID:    txID,
			Message: fmt.Sprintf("Transaction failed: %s - %s", code, message),
			Code:    code,
		}
	default:
		return &BroadcastResult{Result: false, Message: MsgResultUnclear, Code: code}
	}
}
