package tx

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

type ExtractResponse struct {
	Kind               walletconnect.Kind    `json:"kind"`
	Payload            walletconnect.Payload `json:"payload"`
	Valid              bool                  `json:"valid"`
	AlreadyBroadcasted bool                  `json:"already_broadcasted"`
}

func PostExtractRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1WalletConnect.POST("/extract", postExtractHandler(s))
}

func postExtractHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := readBody(c)
		if err != nil {
			return err
		}

		p := walletconnect.Extract(raw)
		kind := walletconnect.KindOf(p)

		if s.Metrics != nil {
			s.Metrics.ObserveExtract(kind)
		}

		return c.JSON(http.StatusOK, ExtractResponse{
			Kind:               kind,
			Payload:            p,
			Valid:              walletconnect.IsValid(p),
			AlreadyBroadcasted: walletconnect.IsAlreadyBroadcasted(p),
		})
	}
}
