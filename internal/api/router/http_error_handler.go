package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/tron-walletconnect/internal/api/httperrors"
	"github/chapool/tron-walletconnect/internal/util"
)

// HTTPErrorHandler renders every error returned by a handler as HTTPError JSON.
// Errors that are neither *HTTPError, *HTTPValidationError nor *echo.HTTPError become a generic 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := util.LogFromContext(c.Request().Context())

	var (
		code int
		body any
	)
	switch e := err.(type) {
	case *httperrors.HTTPValidationError:
		code, body = e.Code, e
	case *httperrors.HTTPError:
		code, body = e.Code, e
	case *echo.HTTPError:
		httpErr := httperrors.NewFromEcho(e)
		if msg, ok := e.Message.(string); ok && msg != httpErr.Title {
			httpErr.Detail = msg
		}
		code, body = httpErr.Code, httpErr
	default:
		httpErr := httperrors.NewHTTPError(http.StatusInternalServerError, httperrors.TypeGeneric, http.StatusText(http.StatusInternalServerError))
		httpErr.Internal = err
		code, body = httpErr.Code, httpErr
	}

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", code).Msg("Request failed")
	} else {
		log.Debug().Err(err).Int("status", code).Msg("Request rejected")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}

	if err != nil {
		log.Warn().Err(err).Msg("Failed to send error response")
	}
}
