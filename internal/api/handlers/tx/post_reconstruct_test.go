package tx_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/api/httperrors"
	"github/chapool/tron-walletconnect/internal/test"
	"github/chapool/tron-walletconnect/internal/tron"
)

func reconstructPayload(signature string) test.GenericPayload {
	return test.GenericPayload{
		"signature":        signature,
		"contract_address": test.USDTContractAddress,
		"spender_address":  test.SpenderAddressHex,
		"amount":           "1000000",
		"owner_address":    test.OwnerAddressHex,
	}
}

func TestPostReconstructSuccess(t *testing.T) {
	test.WithTestServerWithNode(t, func(s *api.Server, node *test.TronNode) {
		node.Respond(test.PathTriggerSmartContract, http.StatusOK, test.UnsignedApproveReply)

		payload := reconstructPayload("detached")
		payload["network"] = "testnet"

		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/walletconnect/reconstruct", payload.Reader(t), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response tron.Transaction
		test.ParseResponseBody(t, res, &response)

		assert.Equal(t, "deadbeef", response.TxID)
		assert.Equal(t, []string{"detached"}, response.Signature)
		require.NotNil(t, response.RawData)
		require.Len(t, response.RawData.Contract, 1)

		requests := node.Requests(test.PathTriggerSmartContract)
		require.Len(t, requests, 1)

		var sent tron.TriggerSmartContractRequest
		require.NoError(t, json.Unmarshal(requests[0], &sent))
		assert.Equal(t, "approve(address,uint256)", sent.FunctionSelector)
		assert.Empty(t, node.Requests(test.PathBroadcastTransaction))
	})
}

func TestPostReconstructInvalidRequest(t *testing.T) {
	test.WithTestServerWithNode(t, func(s *api.Server, node *test.TronNode) {
		payload := reconstructPayload("detached")
		payload["amount"] = "lots"

		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/walletconnect/reconstruct", payload.Reader(t), nil)
		assert.Equal(t, []string{"amount"}, test.RequireHTTPValidationError(t, res))

		payload = reconstructPayload("detached")
		payload["spender_address"] = "nope"

		res = test.PerformRequest(t, s, http.MethodPost, "/api/v1/walletconnect/reconstruct", payload.Reader(t), nil)
		response := test.RequireHTTPError(t, res, httperrors.NewHTTPError(http.StatusBadRequest, httperrors.TypeInvalidRequest, ""))
		assert.Contains(t, response.Detail, "invalid request")

		res = test.PerformRequestJSON(t, s, http.MethodPost, "/api/v1/walletconnect/reconstruct", `[]`)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestMalformedBody)

		payload = reconstructPayload("detached")
		payload["network"] = "shasta"

		res = test.PerformRequest(t, s, http.MethodPost, "/api/v1/walletconnect/reconstruct", payload.Reader(t), nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidNetwork)

		assert.Empty(t, node.Requests(test.PathTriggerSmartContract))
	})
}

func TestPostReconstructMissingFields(t *testing.T) {
	test.WithTestServerWithNode(t, func(s *api.Server, node *test.TronNode) {
		res := test.PerformRequestJSON(t, s, http.MethodPost, "/api/v1/walletconnect/reconstruct", `{"signature":"detached","amount":""}`)
		keys := test.RequireHTTPValidationError(t, res)
		assert.ElementsMatch(t, []string{"amount", "contract_address", "owner_address", "spender_address"}, keys)

		res = test.PerformRequest(t, s, http.MethodPost, "/api/v1/walletconnect/reconstruct", nil, nil)
		keys = test.RequireHTTPValidationError(t, res)
		assert.Contains(t, keys, "signature")

		assert.Empty(t, node.Requests(test.PathTriggerSmartContract))
	})
}

func TestPostReconstructBuilderFailure(t *testing.T) {
	test.WithTestServerWithNode(t, func(s *api.Server, node *test.TronNode) {
		node.Respond(test.PathTriggerSmartContract, http.StatusOK, `{"result":{"result":false,"code":"CONTRACT_VALIDATE_ERROR","message":"6e6f20636f6e7472616374"}}`)

		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/walletconnect/reconstruct", reconstructPayload("detached").Reader(t), nil)
		response := test.RequireHTTPError(t, res, httperrors.NewHTTPError(http.StatusBadGateway, httperrors.TypeNodeError, ""))
		assert.Contains(t, response.Detail, "CONTRACT_VALIDATE_ERROR - no contract")
	})
}
