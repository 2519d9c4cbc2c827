package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/api/httperrors"
)

const shutdownTimeout = 5 * time.Second

type GenericPayload map[string]any

func (g GenericPayload) Reader(t *testing.T) *bytes.Reader {
	t.Helper()

	b, err := json.Marshal(g)
	require.NoError(t, err, "failed to serialize payload")

	return bytes.NewReader(b)
}

// PerformRequest serves a single request through the server's echo instance.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body io.Reader, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)

	for k, v := range headers {
		for _, vv := range v {
			req.Header.Add(k, vv)
		}
	}

	if body != nil && req.Header.Get(echo.HeaderContentType) == "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	res := httptest.NewRecorder()

	s.Echo.ServeHTTP(res, req)

	return res
}

// PerformRequestJSON posts raw JSON text.
func PerformRequestJSON(t *testing.T, s *api.Server, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	return PerformRequest(t, s, method, path, bytes.NewBufferString(body), nil)
}

func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(res.Result().Body).Decode(v), "failed to parse response body")
}

// RequireHTTPError asserts res carries the status and type of expectedError.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, expectedError *httperrors.HTTPError) httperrors.HTTPError {
	t.Helper()

	require.Equal(t, expectedError.Code, res.Result().StatusCode, "unexpected status code")

	var response httperrors.HTTPError
	ParseResponseBody(t, res, &response)

	require.Equal(t, expectedError.Code, response.Code, "unexpected error status")
	require.Equal(t, expectedError.Type, response.Type, "unexpected error type")

	return response
}

// RequireHTTPValidationError asserts res is a 400 validation error and returns
// the keys of all failing fields.
func RequireHTTPValidationError(t *testing.T, res *httptest.ResponseRecorder) []string {
	t.Helper()

	require.Equal(t, http.StatusBadRequest, res.Result().StatusCode, "unexpected status code")

	var response httperrors.HTTPValidationError
	ParseResponseBody(t, res, &response)

	require.NotNil(t, response.HTTPError)
	require.Equal(t, httperrors.TypeInvalidRequest, response.Type, "unexpected error type")
	require.NotEmpty(t, response.ValidationErrors, "no validation errors in response")

	keys := make([]string, 0, len(response.ValidationErrors))
	for _, detail := range response.ValidationErrors {
		require.NotNil(t, detail.Key)
		keys = append(keys, *detail.Key)
	}

	return keys
}
