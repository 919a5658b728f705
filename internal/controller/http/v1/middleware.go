package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nutscript/helix-logs/internal/service"
	log "github.com/sirupsen/logrus"
)

const (
	ctxSteamID = "steamid"
	ctxRank    = "rank"
)

// rankAuthorization gates a route on the caller's admin-mod rank. The
// resolved rank rides on the request context for the handler.
func rankAuthorization(ranks service.Rank, identity IdentityExtractor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			steamID, err := identity(c)
			if err != nil {
				return err
			}

			check, err := ranks.CheckRank(c.Request().Context(), steamID)
			if err != nil {
				if errors.Is(err, service.ErrRankUnavailable) {
					log.WithFields(log.Fields{"steamid": steamID, "error": err}).Error("Rank source unavailable")
					return echo.NewHTTPError(http.StatusServiceUnavailable, "rank lookup unavailable")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "rank lookup failed")
			}

			if !check.Authorized {
				return echo.NewHTTPError(http.StatusForbidden, check.Message)
			}

			c.Set(ctxSteamID, steamID)
			c.Set(ctxRank, check.Rank)

			return next(c)
		}
	}
}
