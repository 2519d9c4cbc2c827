package util

import (
	"net/http"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/tron-walletconnect/internal/api/httperrors"
	"github/chapool/tron-walletconnect/internal/types"
)

type runtimeValidatable interface {
	Validate(formats strfmt.Registry) error
}

// BindAndValidateBody binds the JSON request body into v and validates it.
// Bodies that do not decode into v are rejected as malformed, schema
// violations as an HTTPValidationError listing every failing field.
func BindAndValidateBody(c echo.Context, v runtimeValidatable) error {
	if err := c.Bind(v); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code != http.StatusBadRequest {
			return err
		}

		httpErr := httperrors.NewHTTPError(
			httperrors.ErrBadRequestMalformedBody.Code,
			httperrors.ErrBadRequestMalformedBody.Type,
			httperrors.ErrBadRequestMalformedBody.Title,
		)
		httpErr.Internal = err
		return httpErr
	}

	return ValidatePayload(c, v)
}

// ValidatePayload validates v against strfmt.Default.
func ValidatePayload(c echo.Context, v runtimeValidatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	var details []*types.HTTPValidationErrorDetail

	var compositeError *oerrors.CompositeError
	var validationError *oerrors.Validation
	switch {
	case errors.As(err, &compositeError):
		details = formatValidationErrors(compositeError)
	case errors.As(err, &validationError):
		details = []*types.HTTPValidationErrorDetail{validationErrorDetail(validationError)}
	default:
		return err
	}

	LogFromContext(c.Request().Context()).Debug().
		Err(err).
		Int("validation_errors", len(details)).
		Msg("Payload did not match schema, returning HTTP validation error")

	valErr := httperrors.NewHTTPValidationError(http.StatusBadRequest, httperrors.TypeInvalidRequest, http.StatusText(http.StatusBadRequest), details)
	valErr.Internal = err
	return valErr
}

func formatValidationErrors(err *oerrors.CompositeError) []*types.HTTPValidationErrorDetail {
	details := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))
	for _, e := range err.Errors {
		switch ee := e.(type) {
		case *oerrors.Validation:
			details = append(details, validationErrorDetail(ee))
		case *oerrors.CompositeError:
			details = append(details, formatValidationErrors(ee)...)
		default:
			details = append(details, &types.HTTPValidationErrorDetail{
				Key:   swag.String("general"),
				In:    swag.String("body"),
				Error: swag.String(e.Error()),
			})
		}
	}

	return details
}

func validationErrorDetail(e *oerrors.Validation) *types.HTTPValidationErrorDetail {
	return &types.HTTPValidationErrorDetail{
		Key:   swag.String(e.Name),
		In:    swag.String(e.In),
		Error: swag.String(e.Error()),
	}
}
