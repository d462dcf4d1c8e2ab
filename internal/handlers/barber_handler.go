package handlers

import (
	"github.com/gin-gonic/gin"

	domaincat "github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	ucappointment "github.com/BruksfildServices01/barber-marketplace/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/usecase/catalog"
)

type BarberHandler struct {
	barbers *catalog.Barbers
	stats   *ucappointment.GetBarberStats
}

func NewBarberHandler(
	barbers *catalog.Barbers,
	stats *ucappointment.GetBarberStats,
) *BarberHandler {
	return &BarberHandler{
		barbers: barbers,
		stats:   stats,
	}
}

// GET /api/barbers?city=&search=
func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.barbers.List(c.Request.Context(), domaincat.BarberFilter{
		City:   c.Query("city"),
		Search: c.Query("search"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.barbers.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

// GET /api/me/barber
func (h *BarberHandler) Mine(c *gin.Context) {
	b, err := h.barbers.GetMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var in dto.InsertBarber
	if err := bindJSON(c, &in); err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.barbers.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, b)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var in dto.UpdateBarber
	if err := bindJSON(c, &in); err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.barbers.Update(c.Request.Context(), id, middleware.UserID(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

// GET /api/barbers/:id/stats
func (h *BarberHandler) Stats(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, stats)
}
