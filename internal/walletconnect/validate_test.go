package walletconnect_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name    string
		payload walletconnect.Payload
		want    bool
	}{
		{"nil", nil, false},
		{"signed", walletconnect.SignedPayload{Transaction: &tron.Transaction{
			RawData:   &tron.RawData{Contract: []tron.Contract{}},
			Signature: []string{"s1"},
		}}, true},
		{"no signature", walletconnect.SignedPayload{Transaction: &tron.Transaction{
			RawData: &tron.RawData{Contract: []tron.Contract{}},
		}}, false},
		{"no contract list", walletconnect.SignedPayload{Transaction: &tron.Transaction{
			RawData:   &tron.RawData{},
			Signature: []string{"s1"},
		}}, false},
		{"no raw data", walletconnect.SignedPayload{Transaction: &tron.Transaction{Signature: []string{"s1"}}}, false},
		{"nil transaction", walletconnect.SignedPayload{}, false},
		{"signature list", walletconnect.SignatureList{"s1"}, true},
		{"empty signature list", walletconnect.SignatureList{}, false},
		{"detached signature", walletconnect.DetachedSignature("s1"), false},
		{"already broadcast", walletconnect.AlreadyBroadcast{TxID: "x"}, true},
		{"already broadcast without id", walletconnect.AlreadyBroadcast{}, false},
		{"wrapped", walletconnect.WrappedPayload{Inner: walletconnect.SignatureList{"s1"}}, false},
		{"unrecognized", walletconnect.Unrecognized(`{}`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, walletconnect.IsValid(tt.payload))
		})
	}
}

func TestIsValidContractListMustBeArray(t *testing.T) {
	assert.True(t, walletconnect.IsValid(walletconnect.ParsePayload(json.RawMessage(`{"raw_data":{"contract":[]},"signature":["s1"]}`))))
	assert.False(t, walletconnect.IsValid(walletconnect.ParsePayload(json.RawMessage(`{"raw_data":{"contract":null},"signature":["s1"]}`))))
	assert.False(t, walletconnect.IsValid(walletconnect.ParsePayload(json.RawMessage(`{"raw_data":{"contract":{}},"signature":["s1"]}`))))
}

func TestIsAlreadyBroadcasted(t *testing.T) {
	assert.True(t, walletconnect.IsAlreadyBroadcasted(walletconnect.AlreadyBroadcast{TxID: "x"}))
	assert.True(t, walletconnect.IsAlreadyBroadcasted(walletconnect.ParsePayload(json.RawMessage(`{"alreadyBroadcasted":true,"txID":"x"}`))))
	assert.False(t, walletconnect.IsAlreadyBroadcasted(walletconnect.ParsePayload(json.RawMessage(`{"alreadyBroadcasted":false,"txID":"x"}`))))
	assert.False(t, walletconnect.IsAlreadyBroadcasted(nil))
	assert.False(t, walletconnect.IsAlreadyBroadcasted(walletconnect.SignatureList{"s"}))
}

func TestGetTransactionHash(t *testing.T) {
	hash, ok := walletconnect.GetTransactionHash(&walletconnect.BroadcastResult{Result: true, TxID: "X"})
	require.True(t, ok)
	assert.Equal(t, "X", hash)

	_, ok = walletconnect.GetTransactionHash(&walletconnect.BroadcastResult{Result: false, TxID: "X"})
	assert.False(t, ok)

	_, ok = walletconnect.GetTransactionHash(&walletconnect.BroadcastResult{Result: true})
	assert.False(t, ok)

	_, ok = walletconnect.GetTransactionHash(nil)
	assert.False(t, ok)
}

func TestParsePayload(t *testing.T) {
	assert.Nil(t, walletconnect.ParsePayload(json.RawMessage(`null`)))
	assert.Equal(t, walletconnect.DetachedSignature("s"), walletconnect.ParsePayload(json.RawMessage(`"s"`)))
	assert.Equal(t, walletconnect.SignatureList{"s", "1"}, walletconnect.ParsePayload(json.RawMessage(`["s",1]`)))

	wrapped, ok := walletconnect.ParsePayload(json.RawMessage(`{"transaction":{"raw_data":{"contract":[]},"signature":["s"]}}`)).(walletconnect.WrappedPayload)
	require.True(t, ok)
	assert.Equal(t, walletconnect.KindSignedTransaction, walletconnect.KindOf(wrapped.Inner))

	out, err := json.Marshal(wrapped)
	require.NoError(t, err)
	assert.JSONEq(t, `{"transaction":{"raw_data":{"contract":[]},"signature":["s"]}}`, string(out))

	// field types are not decoded, only the structure decides validity
	signed, ok := walletconnect.ParsePayload(json.RawMessage(`{"signature":"s"}`)).(walletconnect.SignedPayload)
	require.True(t, ok)
	assert.Nil(t, signed.Transaction)
	assert.False(t, walletconnect.IsValid(signed))
}

func TestIsValidIgnoresFieldTypes(t *testing.T) {
	p := walletconnect.Extract(json.RawMessage(`{"raw_data":{"contract":[],"fee_limit":"200000000"},"signature":["s1"]}`))

	signed, ok := p.(walletconnect.SignedPayload)
	require.True(t, ok)
	assert.Nil(t, signed.Transaction)
	assert.True(t, walletconnect.IsValid(p))

	assert.False(t, walletconnect.IsValid(walletconnect.ParsePayload(json.RawMessage(`{"raw_data":"x","signature":["s1"]}`))))
	assert.False(t, walletconnect.IsValid(walletconnect.ParsePayload(json.RawMessage(`{"raw_data":{"contract":[]},"signature":"s1"}`))))
}
