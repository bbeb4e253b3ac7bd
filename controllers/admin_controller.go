package controllers

import (
	"servibook/pkg/resp"
	"servibook/services"

	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// AdminController groups the moderation endpoints: owner applications,
// category requests and direct category management.
type AdminController struct {
	Applications *services.OwnerApplicationService
	Categories   *services.CategoryService
}

func NewAdminController(applications *services.OwnerApplicationService, categories *services.CategoryService) *AdminController {
	return &AdminController{Applications: applications, Categories: categories}
}

// GET /admin/owner-requests?status=pending
func (a *AdminController) OwnerRequests(c *gin.Context) {
	items, err := a.Applications.List(c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/owner-requests/:id/approve
func (a *AdminController) ApproveOwner(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	app, err := a.Applications.Approve(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, app)
}

// POST /admin/owner-requests/:id/reject
func (a *AdminController) RejectOwner(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	app, err := a.Applications.Reject(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, app)
}

// GET /admin/owners
func (a *AdminController) Owners(c *gin.Context) {
	owners, err := a.Applications.Owners()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, owners)
}

// GET /admin/category-requests
func (a *AdminController) CategoryRequests(c *gin.Context) {
	items, err := a.Categories.PendingRequests()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/category-requests/:id/approve
func (a *AdminController) ApproveCategoryRequest(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	cat, err := a.Categories.ApproveRequest(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// POST /admin/categories
func (a *AdminController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := a.Categories.Create(req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}
