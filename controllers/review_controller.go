package controllers

import (
	"servibook/pkg/resp"
	"servibook/services"
	"servibook/utils"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	BusinessID    uint   `json:"businessId" binding:"required"`
	AppointmentID uint   `json:"appointmentId"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}
type ReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

type ReviewController struct{ Reviews *services.ReviewService }

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// GET /businesses/:id/reviews
func (r *ReviewController) ListForBusiness(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	items, err := r.Reviews.ListForBusiness(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /reviews/eligibility/:businessId
func (r *ReviewController) Eligibility(c *gin.Context) {
	id, ok := uintParam(c, "businessId")
	if !ok {
		return
	}
	eligible, appointmentID, err := r.Reviews.Eligibility(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"eligible": eligible, "appointmentId": appointmentID})
}

// POST /reviews
func (r *ReviewController) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := r.Reviews.Create(utils.CurrentUserID(c), services.CreateReviewInput{
		BusinessID:    req.BusinessID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rev)
}

// PATCH /reviews/:id
func (r *ReviewController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := r.Reviews.Update(utils.CurrentUserID(c), id, req.Rating, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rev)
}

// DELETE /reviews/:id
func (r *ReviewController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := r.Reviews.Delete(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /reviews/:id/reply
func (r *ReviewController) Reply(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := r.Reviews.Reply(utils.CurrentUserID(c), utils.CurrentRole(c), id, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rev)
}
