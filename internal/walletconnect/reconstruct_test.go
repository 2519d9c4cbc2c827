package walletconnect_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tron-walletconnect/internal/test"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

func approveRequest(signature string) walletconnect.ReconstructRequest {
	return walletconnect.ReconstructRequest{
		Signature:       signature,
		ContractAddress: test.USDTContractAddress,
		SpenderAddress:  test.SpenderAddressHex,
		Amount:          "1000000",
		OwnerAddress:    test.OwnerAddressHex,
	}
}

func TestReconstruct(t *testing.T) {
	node := test.NewTronNode(t)
	node.Respond(test.PathTriggerSmartContract, http.StatusOK, test.UnsignedApproveReply)
	rec := &recorder{}
	s := newService(t, node, walletconnect.WithRecorder(rec))

	tx, err := s.Reconstruct(context.Background(), approveRequest("detached"), tron.NetworkNile)
	require.NoError(t, err)

	assert.Equal(t, "deadbeef", tx.TxID)
	assert.True(t, tx.Visible)
	assert.Equal(t, []string{"detached"}, tx.Signature)
	assert.True(t, walletconnect.IsValid(walletconnect.SignedPayload{Transaction: tx}))

	requests := node.Requests(test.PathTriggerSmartContract)
	require.Len(t, requests, 1)

	var sent tron.TriggerSmartContractRequest
	require.NoError(t, json.Unmarshal(requests[0], &sent))

	owner, err := tron.ParseAddress(test.OwnerAddressHex)
	require.NoError(t, err)

	assert.Equal(t, owner.String(), sent.OwnerAddress)
	assert.Equal(t, test.USDTContractAddress, sent.ContractAddress)
	assert.Equal(t, "approve(address,uint256)", sent.FunctionSelector)
	assert.Equal(t, int64(200_000_000), sent.FeeLimit)
	assert.Equal(t, int64(0), sent.CallValue)
	assert.True(t, sent.Visible)
	assert.Equal(t, strings.Repeat("0", 24)+strings.Repeat("11", 20)+strings.Repeat("0", 59)+"f4240", sent.Parameter)

	require.Len(t, rec.reconstructs, 1)
	assert.NoError(t, rec.reconstructs[0])
}

func TestReconstructKeepsBuilderSignatures(t *testing.T) {
	node := test.NewTronNode(t)
	node.Respond(test.PathTriggerSmartContract, http.StatusOK, `{"transaction":{"raw_data":{"contract":[]},"signature":["existing"]}}`)
	s := newService(t, node)

	tx, err := s.Reconstruct(context.Background(), approveRequest("detached"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"existing", "detached"}, tx.Signature)
}

func TestReconstructInvalidRequest(t *testing.T) {
	node := test.NewTronNode(t)
	s := newService(t, node)

	tests := []struct {
		name   string
		mutate func(r *walletconnect.ReconstructRequest)
	}{
		{"signature", func(r *walletconnect.ReconstructRequest) { r.Signature = " " }},
		{"contract", func(r *walletconnect.ReconstructRequest) { r.ContractAddress = "nope" }},
		{"spender", func(r *walletconnect.ReconstructRequest) { r.SpenderAddress = "" }},
		{"owner", func(r *walletconnect.ReconstructRequest) { r.OwnerAddress = "TXYZ" }},
		{"amount", func(r *walletconnect.ReconstructRequest) { r.Amount = "-5" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := approveRequest("detached")
			tt.mutate(&req)

			_, err := s.Reconstruct(context.Background(), req, tron.NetworkNile)
			require.Error(t, err)
			assert.ErrorIs(t, err, walletconnect.ErrInvalidRequest)
		})
	}

	assert.Empty(t, node.Requests(test.PathTriggerSmartContract))
}

func TestReconstructBuilderFailurePropagates(t *testing.T) {
	node := test.NewTronNode(t)
	node.Respond(test.PathTriggerSmartContract, http.StatusOK, `{"result":{"result":false,"code":"CONTRACT_VALIDATE_ERROR","message":"6e6f20636f6e7472616374"}}`)
	rec := &recorder{}
	s := newService(t, node, walletconnect.WithRecorder(rec))

	_, err := s.Reconstruct(context.Background(), approveRequest("detached"), tron.NetworkNile)
	require.Error(t, err)
	assert.NotErrorIs(t, err, walletconnect.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "CONTRACT_VALIDATE_ERROR - no contract")

	require.Len(t, rec.reconstructs, 1)
	assert.Error(t, rec.reconstructs[0])
}

func TestReconstructNodeUnreachable(t *testing.T) {
	node := test.NewTronNode(t)
	s := newService(t, node)
	node.Close()

	_, err := s.Reconstruct(context.Background(), approveRequest("detached"), tron.NetworkNile)
	require.Error(t, err)
}
