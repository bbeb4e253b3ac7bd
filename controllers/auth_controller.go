package controllers

import (
	"servibook/entity"
	"servibook/pkg/resp"
	"servibook/services"
	"servibook/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
type UpdateProfileRequest struct {
	FullName          *string `json:"fullName"`
	PhoneNumber       *string `json:"phoneNumber"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}
type OwnerRequestRequest struct {
	BusinessName        string `json:"businessName" binding:"required"`
	BusinessDescription string `json:"businessDescription"`
	Address             string `json:"address"`
	LogoURL             string `json:"logoUrl"`
}

type AuthController struct{ Auth *services.AuthService }

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "fullName": u.FullName,
		"phoneNumber": u.PhoneNumber, "profilePictureUrl": u.ProfilePictureURL,
		"role": u.Role,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(req.Email, req.Password, req.FullName, req.PhoneNumber)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, userPayload(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": userPayload(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, userPayload(user))
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.UpdateProfile(utils.CurrentUserID(c), req.FullName, req.PhoneNumber, req.ProfilePictureURL)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, userPayload(user))
}

// POST /auth/me/request-owner
func (a *AuthController) RequestOwner(c *gin.Context) {
	var req OwnerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	app, err := a.Auth.RequestOwner(utils.CurrentUserID(c), &entity.OwnerApplication{
		BusinessName:        req.BusinessName,
		BusinessDescription: req.BusinessDescription,
		Address:             req.Address,
		LogoURL:             req.LogoURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, app)
}
