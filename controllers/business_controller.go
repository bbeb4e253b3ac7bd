package controllers

import (
	"strconv"

	"servibook/pkg/resp"
	"servibook/services"
	"servibook/utils"

	"github.com/gin-gonic/gin"
)

type RegisterBusinessRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Address         string `json:"address"`
	LogoURL         string `json:"logoUrl"`
	AppointmentMode string `json:"appointmentMode"`
}
type UpdateBusinessRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Address         *string  `json:"address"`
	LogoURL         *string  `json:"logoUrl"`
	AppointmentMode *string  `json:"appointmentMode"`
	Photos          []string `json:"photos"`
	Categories      []string `json:"categories"`
}
type UpdateScheduleRequest struct {
	Days []services.ScheduleDayInput `json:"days" binding:"required"`
}

type BusinessController struct {
	Businesses   *services.BusinessService
	Availability *services.AvailabilityService
	Appointments *services.AppointmentService
}

func NewBusinessController(businesses *services.BusinessService, availability *services.AvailabilityService, appointments *services.AppointmentService) *BusinessController {
	return &BusinessController{Businesses: businesses, Availability: availability, Appointments: appointments}
}

// GET /businesses
func (b *BusinessController) List(c *gin.Context) {
	items, err := b.Businesses.ListPublished()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /businesses/:id
func (b *BusinessController) Detail(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	biz, err := b.Businesses.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, biz)
}

// GET /businesses/:id/available-slots?date=YYYY-MM-DD&employee_id=N
func (b *BusinessController) AvailableSlots(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var employeeID *uint
	if raw := c.Query("employee_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid employee_id")
			return
		}
		v := uint(n)
		employeeID = &v
	}

	slots, err := b.Availability.AvailableSlots(id, c.Query("date"), employeeID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"date": c.Query("date"), "slots": slots})
}

// POST /partner/business
func (b *BusinessController) Register(c *gin.Context) {
	var req RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	biz, err := b.Businesses.Register(utils.CurrentUserID(c), services.RegisterBusinessInput{
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		LogoURL:         req.LogoURL,
		AppointmentMode: req.AppointmentMode,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, biz)
}

// GET /partner/business
func (b *BusinessController) MyBusiness(c *gin.Context) {
	biz, err := b.Businesses.MyBusiness(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, biz)
}

// PATCH /partner/business
func (b *BusinessController) Update(c *gin.Context) {
	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	biz, err := b.Businesses.Update(utils.CurrentUserID(c), services.UpdateBusinessInput{
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		LogoURL:         req.LogoURL,
		AppointmentMode: req.AppointmentMode,
		Photos:          req.Photos,
		Categories:      req.Categories,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, biz)
}

// POST /partner/business/publish
func (b *BusinessController) Publish(c *gin.Context) {
	biz, err := b.Businesses.Publish(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, biz)
}

// PUT /partner/business/schedule
func (b *BusinessController) UpdateSchedule(c *gin.Context) {
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	biz, err := b.Businesses.UpdateSchedule(utils.CurrentUserID(c), req.Days)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, biz)
}

// GET /partner/business/appointments
func (b *BusinessController) BusinessAppointments(c *gin.Context) {
	biz, err := b.Businesses.MyBusiness(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	items, err := b.Appointments.ListForBusiness(biz.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}
