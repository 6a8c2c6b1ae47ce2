package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fortistravel/fortis-tourism-backend/internal/service"
	"github.com/fortistravel/fortis-tourism-backend/internal/util"
)

type StatsHandler struct {
	stats *service.StatsService
}

func RegisterStats(e *echo.Echo, auth *service.AuthService, stats *service.StatsService) {
	handler := &StatsHandler{stats: stats}

	admin := e.Group("/api/v1/admin", RequireAuth(auth), RequireAdmin())
	admin.GET("/stats", handler.adminStats)
}

func (h *StatsHandler) adminStats(c echo.Context) error {
	stats, err := h.stats.AdminStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to compute stats"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"stats": stats})
}
