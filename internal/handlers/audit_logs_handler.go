package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs    *audit.Logger
	barbers *catalog.Barbers
}

func NewAuditLogsHandler(logs *audit.Logger, barbers *catalog.Barbers) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, barbers: barbers}
}

// GET /api/me/audit-logs?action&entity&from&to&page&limit
func (h *AuditLogsHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1, 0)
	limit := queryInt(c, "limit", 50, 200)

	// --------------------------------------------------
	// Scope: the caller's own barber profile
	// --------------------------------------------------
	barber, err := h.barbers.GetMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			httpresp.Paged(c, []models.AuditLog{}, page, limit, 0)
			return
		}
		httperr.Respond(c, err)
		return
	}

	from, err := queryTime(c, "from", false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	to, err := queryTime(c, "to", true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	logs, total, err := h.logs.List(c.Request.Context(), audit.Filter{
		BarberID: barber.ID,
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		From:     from,
		To:       to,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	httpresp.Paged(c, logs, page, limit, total)
}
