package httperrors

import (
	"net/http"
)

var (
	ErrBadRequestInvalidNetwork = NewHTTPError(http.StatusBadRequest, TypeInvalidNetwork, "The given network is not supported.")
	ErrBadRequestMalformedBody  = NewHTTPError(http.StatusBadRequest, TypeInvalidRequest, "The request body is not valid JSON.")
)
