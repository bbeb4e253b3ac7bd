package controllers

import (
	"servibook/pkg/resp"
	"servibook/services"
	"servibook/utils"

	"github.com/gin-gonic/gin"
)

type CreateEmployeeRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}
type UpdateEmployeeRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}
type AllowedSlotsRequest struct {
	AllowedSlots map[string][]string `json:"allowedSlots" binding:"required"`
}

type EmployeeController struct{ Employees *services.EmployeeService }

func NewEmployeeController(employees *services.EmployeeService) *EmployeeController {
	return &EmployeeController{Employees: employees}
}

// GET /businesses/:id/employees
func (e *EmployeeController) ListForBusiness(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	items, err := e.Employees.ListForBusiness(id, false)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /partner/business/employees
func (e *EmployeeController) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	emp, err := e.Employees.Create(utils.CurrentUserID(c), req.Name, active)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, emp)
}

// PATCH /partner/employees/:id
func (e *EmployeeController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	emp, err := e.Employees.Update(utils.CurrentUserID(c), id, req.Name, req.Active)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, emp)
}

// DELETE /partner/employees/:id
func (e *EmployeeController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := e.Employees.Delete(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PUT /partner/employees/:id/allowed-slots
func (e *EmployeeController) SetAllowedSlots(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req AllowedSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	emp, err := e.Employees.SetAllowedSlots(utils.CurrentUserID(c), id, req.AllowedSlots)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, emp)
}
