package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/api/handlers/common"
	"github/chapool/tron-walletconnect/internal/api/handlers/tx"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		tx.PostBroadcastRoute(s),
		tx.PostExtractRoute(s),
		tx.PostReconstructRoute(s),
		tx.PostSubmitRoute(s),
	}
}
