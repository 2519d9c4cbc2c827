package tx

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/api/httperrors"
	"github/chapool/tron-walletconnect/internal/types"
	"github/chapool/tron-walletconnect/internal/util"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

func PostReconstructRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1WalletConnect.POST("/reconstruct", postReconstructHandler(s))
}

// Rebuilds an approve transaction around a detached signature. The result is
// not broadcast.
func postReconstructHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostReconstructPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		network, err := parseNetwork(body.Network)
		if err != nil {
			return err
		}

		req := walletconnect.ReconstructRequest{
			Signature:       swag.StringValue(body.Signature),
			ContractAddress: swag.StringValue(body.ContractAddress),
			SpenderAddress:  swag.StringValue(body.SpenderAddress),
			Amount:          swag.StringValue(body.Amount),
			OwnerAddress:    swag.StringValue(body.OwnerAddress),
		}

		tx, err := s.WalletConnect.Reconstruct(c.Request().Context(), req, network)
		if err != nil {
			return serviceError(err, http.StatusBadRequest, httperrors.TypeInvalidRequest)
		}

		return c.JSON(http.StatusOK, tx)
	}
}
