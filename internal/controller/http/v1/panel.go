package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	kafkabroker "github.com/nutscript/helix-logs/internal/broker/kafka"
	"github.com/nutscript/helix-logs/internal/metrics"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
	"github.com/nutscript/helix-logs/internal/service"
	log "github.com/sirupsen/logrus"
)

type panelController struct {
	logService service.Log
	counters   *metrics.Counters
	audit      *kafkabroker.Producer
}

func newPanelController(ls service.Log, cnt *metrics.Counters, audit *kafkabroker.Producer) *panelController {
	return &panelController{
		logService: ls,
		counters:   cnt,
		audit:      audit,
	}
}

// filterFromRequest flattens the query string into the filter input.
// Repeated keys keep their first value.
func filterFromRequest(c echo.Context) repotypes.LogFilter {
	params := map[string]string{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return repotypes.ParseLogFilter(params)
}

func (p *panelController) index(c echo.Context) error {
	logs, err := p.logService.GetLogs(c.Request().Context(), filterFromRequest(c))
	if err != nil {
		p.counters.PanelErrors.Inc("panel", "query")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get logs")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"logs": logs,
		"rank": c.Get(ctxRank),
	})
}

func (p *panelController) context(c echo.Context) error {
	logID, err := strconv.ParseInt(c.Param("logId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid log ID")
	}

	bundle, err := p.logService.GetContext(c.Request().Context(), logID)
	if err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "log not found")
		}
		p.counters.PanelErrors.Inc("context", "query")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get log context")
	}

	return c.JSON(http.StatusOK, bundle)
}

func (p *panelController) download(c echo.Context) error {
	file, err := p.logService.ExportLogs(c.Request().Context(), filterFromRequest(c))
	if err != nil {
		p.counters.PanelErrors.Inc("download", "query")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot export logs")
	}

	p.publishAudit(c, "download-logs")

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(file.Content))
}

func (p *panelController) ticketStatistics(c echo.Context) error {
	now := time.Now()

	month := int(now.Month())
	year := now.Year()

	if v := c.QueryParam("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid month")
		}
		month = m
	}
	if v := c.QueryParam("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = y
	}

	stats, err := p.logService.GetTicketStats(c.Request().Context(), month, year)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid month")
		}
		p.counters.PanelErrors.Inc("ticket_statistics", "query")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get ticket statistics")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"stats":           stats,
		"availableMonths": service.AvailableMonths(now, 3),
	})
}

func (p *panelController) publishAudit(c echo.Context, action string) {
	steamID, _ := c.Get(ctxSteamID).(string)

	err := p.audit.Publish(c.Request().Context(), kafkabroker.AuditEvent{
		SteamID: steamID,
		Action:  action,
		Query:   c.QueryString(),
		Time:    time.Now(),
	})
	if err != nil {
		log.WithFields(log.Fields{"action": action, "error": err}).Warn("Audit event lost")
	}
}
