package controllers

import (
	"servibook/pkg/resp"
	"servibook/services"
	"servibook/utils"

	"github.com/gin-gonic/gin"
)

type CreateAppointmentRequest struct {
	BusinessID      uint   `json:"businessId" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`
	EmployeeID      *uint  `json:"employeeId"`
}

type AppointmentController struct{ Appointments *services.AppointmentService }

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{Appointments: appointments}
}

// POST /appointments
func (a *AppointmentController) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	appt, err := a.Appointments.Create(utils.CurrentUserID(c), req.BusinessID, req.AppointmentTime, req.EmployeeID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, appt)
}

// GET /appointments/me
func (a *AppointmentController) MyAppointments(c *gin.Context) {
	items, err := a.Appointments.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /appointments/:id/cancel
func (a *AppointmentController) Cancel(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	appt, err := a.Appointments.Cancel(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, appt)
}
