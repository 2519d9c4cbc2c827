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

func PostSubmitRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1WalletConnect.POST("/submit", postSubmitHandler(s))
}

// Takes a raw wallet response through extraction, validation, optional
// reconstruction and broadcast.
func postSubmitHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostSubmitPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		network, err := parseNetwork(body.Network)
		if err != nil {
			return err
		}

		res, err := s.WalletConnect.Submit(c.Request().Context(), body.Response, approvalFromPayload(body.Approval), network)
		if err != nil {
			return serviceError(err, http.StatusUnprocessableEntity, httperrors.TypeUnprocessablePayload)
		}

		return c.JSON(http.StatusOK, res)
	}
}

func approvalFromPayload(a *types.PostSubmitPayloadApproval) *walletconnect.Approval {
	if a == nil {
		return nil
	}

	return &walletconnect.Approval{
		ContractAddress: swag.StringValue(a.ContractAddress),
		SpenderAddress:  swag.StringValue(a.SpenderAddress),
		Amount:          swag.StringValue(a.Amount),
		OwnerAddress:    swag.StringValue(a.OwnerAddress),
	}
}
