package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	ucappointment "github.com/BruksfildServices01/barber-marketplace/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucappointment.CreateAppointment
	list         *ucappointment.ListAppointments
	updateStatus *ucappointment.UpdateStatus
}

func NewAppointmentHandler(
	create *ucappointment.CreateAppointment,
	list *ucappointment.ListAppointments,
	updateStatus *ucappointment.UpdateStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		list:         list,
		updateStatus: updateStatus,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in dto.InsertAppointment
	if err := bindJSON(c, &in); err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateCommand{
		CustomerID: middleware.UserID(c),
		BarberID:   in.BarberID.Uint(),
		ServiceID:  in.ServiceID.Uint(),
		StartTime:  in.StartTime.Time(),
		Notes:      in.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	q := dto.ListAppointmentsQuery{Role: c.Query("role")}
	if err := validate.Struct(&q); err != nil {
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

	apps, err := h.list.Execute(c.Request.Context(), ucappointment.ListInput{
		UserID: middleware.UserID(c),
		Role:   q.Role,
		From:   from,
		To:     to,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var in dto.UpdateStatus
	if err := bindJSON(c, &in); err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucappointment.UpdateStatusInput{
		UserID:        middleware.UserID(c),
		AppointmentID: id,
		Status:        in.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}
