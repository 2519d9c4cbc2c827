package tx

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

func PostBroadcastRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1WalletConnect.POST("/broadcast", postBroadcastHandler(s))
}

// Broadcasts a signed transaction. Node and validation failures are reported
// in the body with result false, the status is 200 either way.
func postBroadcastHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		network, err := parseNetwork(c.QueryParam("network"))
		if err != nil {
			return err
		}

		raw, err := readBody(c)
		if err != nil {
			return err
		}

		res := s.WalletConnect.Broadcast(c.Request().Context(), walletconnect.ParsePayload(raw), network)

		return c.JSON(http.StatusOK, res)
	}
}
