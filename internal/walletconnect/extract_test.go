package walletconnect_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tron-walletconnect/internal/test"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

func extract(s string) walletconnect.Payload {
	return walletconnect.Extract(json.RawMessage(s))
}

func TestExtractFalsy(t *testing.T) {
	for _, in := range []string{"", "null", "false", "0", `""`, "0.0"} {
		assert.Nil(t, extract(in), in)
		assert.False(t, walletconnect.IsValid(extract(in)), in)
	}
}

func TestExtractString(t *testing.T) {
	p := extract(`"0xsig"`)
	assert.Equal(t, walletconnect.DetachedSignature("0xsig"), p)
	assert.False(t, walletconnect.IsValid(p))
}

func TestExtractArray(t *testing.T) {
	p := extract(`["s1","s2"]`)
	assert.Equal(t, walletconnect.SignatureList{"s1", "s2"}, p)
	assert.True(t, walletconnect.IsValid(p))

	empty := extract(`[]`)
	assert.Equal(t, walletconnect.SignatureList{}, empty)
	assert.False(t, walletconnect.IsValid(empty))
}

func TestExtractSignedTransaction(t *testing.T) {
	p := extract(test.SignedTransactionJSON)

	signed, ok := p.(walletconnect.SignedPayload)
	require.True(t, ok)
	assert.Equal(t, "c0ffee", signed.Transaction.TxID)
	assert.Equal(t, []string{"s1"}, signed.Transaction.Signature)
	assert.True(t, walletconnect.IsValid(p))
	assert.False(t, walletconnect.IsAlreadyBroadcasted(p))
}

func TestExtractResultTxID(t *testing.T) {
	p := extract(`{"result":{"txID":"abc"}}`)
	assert.Equal(t, walletconnect.AlreadyBroadcast{TxID: "abc"}, p)
	assert.True(t, walletconnect.IsAlreadyBroadcasted(p))
	assert.True(t, walletconnect.IsValid(p))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alreadyBroadcasted":true,"txID":"abc"}`, string(out))
}

func TestExtractResultTransaction(t *testing.T) {
	p := extract(`{"result":{"transaction":{"raw_data":{"contract":[]},"signature":["s"]}}}`)

	signed, ok := p.(walletconnect.SignedPayload)
	require.True(t, ok)
	assert.Equal(t, []string{"s"}, signed.Transaction.Signature)
	assert.True(t, walletconnect.IsValid(p))
}

func TestExtractResultPrecedence(t *testing.T) {
	// raw_data + signature beats the txID marker inside result
	p := extract(`{"result":{"raw_data":{"contract":[]},"signature":["s"],"txID":"abc"}}`)
	_, ok := p.(walletconnect.SignedPayload)
	assert.True(t, ok)

	// txID beats a lone raw_data inside result
	p = extract(`{"result":{"raw_data":{"contract":[]},"txid":"abc"}}`)
	assert.Equal(t, walletconnect.AlreadyBroadcast{TxID: "abc"}, p)

	// lone signature inside result is returned as an incomplete transaction
	p = extract(`{"result":{"signature":["s"]}}`)
	signed, ok := p.(walletconnect.SignedPayload)
	require.True(t, ok)
	assert.Nil(t, signed.Transaction.RawData)
	assert.False(t, walletconnect.IsValid(p))

	// an unremarkable result falls through to the top-level rules
	p = extract(`{"result":{"ok":true},"transaction":{"raw_data":{"contract":[]},"signature":["s"]}}`)
	assert.True(t, walletconnect.IsValid(p))

	// a non-object result is ignored
	p = extract(`{"result":true,"txid":"abc"}`)
	assert.Equal(t, walletconnect.AlreadyBroadcast{TxID: "abc"}, p)
}

func TestExtractTopLevelTransaction(t *testing.T) {
	p := extract(`{"transaction":` + test.SignedTransactionJSON + `,"txID":"ignored"}`)

	signed, ok := p.(walletconnect.SignedPayload)
	require.True(t, ok)
	assert.Equal(t, "c0ffee", signed.Transaction.TxID)
}

func TestExtractTopLevelTxID(t *testing.T) {
	assert.Equal(t, walletconnect.AlreadyBroadcast{TxID: "x1"}, extract(`{"txID":"x1"}`))
	assert.Equal(t, walletconnect.AlreadyBroadcast{TxID: "x2"}, extract(`{"txid":"x2"}`))
}

func TestExtractFallbackKeyScan(t *testing.T) {
	p := extract(`{"foo":1,"signedTransaction":` + test.SignedTransactionJSON + `}`)
	assert.True(t, walletconnect.IsValid(p))

	// first matching key in document order wins
	p = extract(`{"mySignature":"s9","RAW_DATA_blob":{"x":1}}`)
	assert.Equal(t, walletconnect.DetachedSignature("s9"), p)

	p = extract(`{"txHashes":["a","b"]}`)
	assert.Equal(t, walletconnect.SignatureList{"a", "b"}, p)

	// a falsy match yields nothing
	assert.Nil(t, extract(`{"Transaction":null}`))
}

func TestExtractUnrecognized(t *testing.T) {
	p := extract(`{"foo":"bar"}`)
	assert.Equal(t, walletconnect.KindUnrecognized, walletconnect.KindOf(p))
	assert.False(t, walletconnect.IsValid(p))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"foo":"bar"}`, string(out))

	assert.Equal(t, walletconnect.KindUnrecognized, walletconnect.KindOf(extract(`42`)))
	assert.Equal(t, walletconnect.KindUnrecognized, walletconnect.KindOf(extract(`true`)))
}
