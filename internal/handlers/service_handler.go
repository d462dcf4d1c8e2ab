package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/usecase/catalog"
)

type ServiceHandler struct {
	services *catalog.Services
}

func NewServiceHandler(services *catalog.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// GET /api/barbers/:id/services
func (h *ServiceHandler) List(c *gin.Context) {
	barberID, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	services, err := h.services.List(c.Request.Context(), barberID, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

// POST /api/barbers/:id/services
func (h *ServiceHandler) Create(c *gin.Context) {
	barberID, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var in dto.InsertService
	if err := bindJSON(c, &in); err != nil {
		httperr.Respond(c, err)
		return
	}

	svc, err := h.services.Create(c.Request.Context(), barberID, middleware.UserID(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, svc)
}

// PATCH /api/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var in dto.UpdateService
	if err := bindJSON(c, &in); err != nil {
		httperr.Respond(c, err)
		return
	}

	svc, err := h.services.Update(c.Request.Context(), id, middleware.UserID(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}
