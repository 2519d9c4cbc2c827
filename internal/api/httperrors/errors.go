package httperrors

import (
	"fmt"
	"net/http"

	"strings"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/tron-walletconnect/internal/types"
)

const (
	TypeGeneric              = "generic"
	TypeInvalidRequest       = "INVALIDREQUEST"
	TypeInvalidNetwork       = "INVALIDNETWORK"
	TypeUnprocessablePayload = "UNPROCESSABLEPAYLOAD"
	TypeNodeError            = "NODEERROR"
)

// HTTPError is the JSON error body of every non-2xx API response.
type HTTPError struct {
	Code     int    `json:"status"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Detail   string `json:"detail,omitempty"`
	Internal error  `json:"-"`
}

func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		Code:  code,
		Type:  errorType,
		Title: title,
	}
}

func NewHTTPErrorWithDetail(code int, errorType string, title string, detail string) *HTTPError {
	return &HTTPError{
		Code:   code,
		Type:   errorType,
		Title:  title,
		Detail: detail,
	}
}

func NewFromEcho(e *echo.HTTPError) *HTTPError {
	return NewHTTPError(e.Code, TypeGeneric, http.StatusText(e.Code))
}

func (e *HTTPError) Error() string {
	var msg string
	if len(e.Detail) > 0 {
		msg = fmt.Sprintf("HTTPError %d (%s): %s - %s", e.Code, e.Type, e.Title, e.Detail)
	} else {
		msg = fmt.Sprintf("HTTPError %d (%s): %s", e.Code, e.Type, e.Title)
	}

	if e.Internal != nil {
		msg = fmt.Sprintf("%s, %v", msg, e.Internal)
	}

	return msg
}

// Unwrap exposes the internal cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// HTTPValidationError is an HTTPError listing every body field that failed validation.
type HTTPValidationError struct {
	*HTTPError
	ValidationErrors []*types.HTTPValidationErrorDetail `json:"validationErrors"`
}

func NewHTTPValidationError(code int, errorType string, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		HTTPError:        NewHTTPError(code, errorType, title),
		ValidationErrors: validationErrors,
	}
}

func (e *HTTPValidationError) Error() string {
	keys := make([]string, 0, len(e.ValidationErrors))
	for _, detail := range e.ValidationErrors {
		keys = append(keys, swag.StringValue(detail.Key))
	}

	return fmt.Sprintf("%s [%s]", e.HTTPError.Error(), strings.Join(keys, ", "))
}
