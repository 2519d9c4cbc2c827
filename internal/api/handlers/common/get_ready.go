package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/util"
)

// StatusNotReady is returned by the readiness probe while components are missing.
const StatusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when our service is ready to serve traffic (i.e. all components are initialized).
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			util.LogFromContext(c.Request().Context()).Warn().Msg("Readiness probe failed")
			return c.String(StatusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
