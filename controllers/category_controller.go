package controllers

import (
	"servibook/pkg/resp"
	"servibook/services"
	"servibook/utils"

	"github.com/gin-gonic/gin"
)

type CategoryRequestRequest struct {
	Name        string `json:"name" binding:"required"`
	Reason      string `json:"reason"`
	EvidenceURL string `json:"evidenceUrl"`
}

type CategoryController struct{ Categories *services.CategoryService }

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

// GET /categories
func (cc *CategoryController) List(c *gin.Context) {
	items, err := cc.Categories.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /category-requests
func (cc *CategoryController) RequestCategory(c *gin.Context) {
	var req CategoryRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	request, err := cc.Categories.Request(utils.CurrentUserID(c), req.Name, req.Reason, req.EvidenceURL)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, request)
}
