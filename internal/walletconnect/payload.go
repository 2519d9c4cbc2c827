package walletconnect

import (
	"bytes"
	"encoding/json"

	"github/chapool/tron-walletconnect/internal/tron"
)

type Kind string

const (
	KindNone              Kind = "none"
	KindSignedTransaction Kind = "signed_transaction"
	KindWrapped           Kind = "wrapped_transaction"
	KindDetachedSignature Kind = "detached_signature"
	KindSignatureList     Kind = "signature_list"
	KindAlreadyBroadcast  Kind = "already_broadcast"
	KindUnrecognized      Kind = "unrecognized"
)

// Payload is one of the shapes a wallet hands back after a signing request:
// SignedPayload, WrappedPayload, DetachedSignature, SignatureList,
// AlreadyBroadcast or Unrecognized. A nil Payload means nothing was returned.
type Payload interface {
	json.Marshaler
	Kind() Kind
	payload()
}

// KindOf returns the kind of p, KindNone for nil.
func KindOf(p Payload) Kind {
	if p == nil {
		return KindNone
	}
	return p.Kind()
}

// SignedPayload is a transaction object with, possibly, raw_data and signatures.
//
// Raw holds the object exactly as the wallet returned it and is what gets
// broadcast. Transaction is a typed view of it for inspection only, nil when
// Raw does not fit tron.Transaction. Payloads built in code may set only
// Transaction.
type SignedPayload struct {
	Raw         json.RawMessage
	Transaction *tron.Transaction
}

func (SignedPayload) Kind() Kind { return KindSignedTransaction }
func (SignedPayload) payload()   {}

func (p SignedPayload) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(p.Raw)) > 0 {
		return p.Raw.MarshalJSON()
	}
	return json.Marshal(p.Transaction)
}

// body returns the JSON to submit to the node.
func (p SignedPayload) body() (json.RawMessage, error) {
	if len(bytes.TrimSpace(p.Raw)) > 0 {
		return p.Raw, nil
	}
	return json.Marshal(p.Transaction)
}

// broadcastable reports whether raw_data with a contract list and a
// non-empty signature array are present. Field values are not decoded.
func (p SignedPayload) broadcastable() bool {
	if len(bytes.TrimSpace(p.Raw)) == 0 {
		tx := p.Transaction
		return tx != nil && tx.RawData != nil && tx.RawData.Contract != nil && len(tx.Signature) > 0
	}

	obj, ok := parseObject(p.Raw)
	if !ok {
		return false
	}

	rawData, _ := obj.get("raw_data")
	data, ok := parseObject(rawData)
	if !ok {
		return false
	}

	contract, _ := data.get("contract")
	if !isArray(contract) {
		return false
	}

	signature, _ := obj.get("signature")
	var signatures []json.RawMessage
	if !isArray(signature) || json.Unmarshal(signature, &signatures) != nil {
		return false
	}

	return len(signatures) > 0
}

// WrappedPayload is `{"transaction": ...}`.
type WrappedPayload struct {
	Inner Payload
}

func (WrappedPayload) Kind() Kind { return KindWrapped }
func (WrappedPayload) payload()   {}

func (p WrappedPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Transaction Payload `json:"transaction"`
	}{p.Inner})
}

// DetachedSignature is a signature returned without its transaction body.
type DetachedSignature string

func (DetachedSignature) Kind() Kind { return KindDetachedSignature }
func (DetachedSignature) payload()   {}

func (s DetachedSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// SignatureList is a bare array of signatures awaiting reconstruction.
type SignatureList []string

func (SignatureList) Kind() Kind { return KindSignatureList }
func (SignatureList) payload()   {}

func (l SignatureList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// AlreadyBroadcast marks a transaction the wallet submitted itself.
type AlreadyBroadcast struct {
	TxID string
}

func (AlreadyBroadcast) Kind() Kind { return KindAlreadyBroadcast }
func (AlreadyBroadcast) payload()   {}

func (a AlreadyBroadcast) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AlreadyBroadcasted bool   `json:"alreadyBroadcasted"`
		TxID               string `json:"txID,omitempty"`
	}{true, a.TxID})
}

// Unrecognized is passed through untouched.
type Unrecognized json.RawMessage

func (Unrecognized) Kind() Kind { return KindUnrecognized }
func (Unrecognized) payload()   {}

func (u Unrecognized) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(u)) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(u).MarshalJSON()
}

// ParsePayload classifies a JSON value without any heuristics: strings are
// detached signatures, arrays are signature lists, objects are either the
// already-broadcast marker, a {transaction} wrapper or a transaction.
func ParsePayload(raw json.RawMessage) Payload {
	if !truthy(raw) {
		return nil
	}

	switch {
	case isString(raw):
		return DetachedSignature(scalarText(raw))
	case isArray(raw):
		return parseSignatureList(raw)
	case isObject(raw):
		obj, ok := parseObject(raw)
		if !ok {
			return Unrecognized(raw)
		}

		if v, ok := obj.get(alreadyBroadcastedKey); ok && bytes.Equal(bytes.TrimSpace(v), []byte("true")) {
			txID, _ := obj.txID()
			return AlreadyBroadcast{TxID: txID}
		}

		if obj.has("transaction") {
			inner, _ := obj.get("transaction")
			return WrappedPayload{Inner: ParsePayload(inner)}
		}

		return decodeSigned(raw)
	default:
		return Unrecognized(raw)
	}
}

const alreadyBroadcastedKey = "alreadyBroadcasted"

// decodeSigned keeps raw untouched. A typed view is attached when the fields
// decode, otherwise the payload is still judged on its raw structure.
func decodeSigned(raw json.RawMessage) Payload {
	p := SignedPayload{Raw: raw}

	var tx tron.Transaction
	if err := json.Unmarshal(raw, &tx); err == nil {
		p.Transaction = &tx
	}

	return p
}

func parseSignatureList(raw json.RawMessage) Payload {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Unrecognized(raw)
	}

	list := make(SignatureList, 0, len(items))
	for _, item := range items {
		list = append(list, scalarText(item))
	}

	return list
}
