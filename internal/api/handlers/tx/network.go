package tx

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/tron-walletconnect/internal/api/httperrors"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

// parseNetwork resolves an optional network name. An empty name selects the
// service default.
func parseNetwork(name string) (tron.Network, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}

	network, err := tron.ParseNetwork(name)
	if err != nil {
		httpErr := httperrors.NewHTTPErrorWithDetail(
			httperrors.ErrBadRequestInvalidNetwork.Code,
			httperrors.ErrBadRequestInvalidNetwork.Type,
			httperrors.ErrBadRequestInvalidNetwork.Title,
			err.Error(),
		)
		httpErr.Internal = err
		return "", httpErr
	}

	return network, nil
}

// readBody returns the request body as raw JSON. An empty body reads as null.
func readBody(c echo.Context) (json.RawMessage, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("null"), nil
	}

	if !json.Valid(raw) {
		return nil, httperrors.ErrBadRequestMalformedBody
	}

	return raw, nil
}

// serviceError maps walletconnect errors to API errors. invalid is the
// status used for caller mistakes.
func serviceError(err error, invalid int, invalidType string) error {
	if errors.Is(err, walletconnect.ErrInvalidRequest) {
		httpErr := httperrors.NewHTTPErrorWithDetail(invalid, invalidType, "The request could not be processed.", err.Error())
		httpErr.Internal = err
		return httpErr
	}

	httpErr := httperrors.NewHTTPErrorWithDetail(http.StatusBadGateway, httperrors.TypeNodeError, "The TRON node rejected the request.", err.Error())
	httpErr.Internal = err
	return httpErr
}
