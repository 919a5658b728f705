package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	kafkabroker "github.com/nutscript/helix-logs/internal/broker/kafka"
	"github.com/nutscript/helix-logs/internal/metrics"
	"github.com/nutscript/helix-logs/internal/service"
)

// IdentityExtractor resolves the caller's steamid. Session handling
// lives outside this service; the default trusts the header the auth
// proxy sets.
type IdentityExtractor func(c echo.Context) (string, error)

func HeaderIdentity(c echo.Context) (string, error) {
	id := c.Request().Header.Get("X-Steam-ID")
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return id, nil
}

type Deps struct {
	Services *service.Services
	Counters *metrics.Counters
	Audit    *kafkabroker.Producer
	Identity IdentityExtractor
}

func NewRouter(handler *echo.Echo, deps Deps) {
	if deps.Identity == nil {
		deps.Identity = HeaderIdentity
	}

	handler.Use(echomw.Recover())

	panel := newPanelController(deps.Services.Log, deps.Counters, deps.Audit)
	auth := rankAuthorization(deps.Services.Rank, deps.Identity)

	handler.GET("/panel", panel.index, auth)
	handler.GET("/panel/context/:logId", panel.context, auth)
	handler.GET("/download-logs", panel.download, auth)
	handler.GET("/ticket-statistics", panel.ticketStatistics, auth)
}
