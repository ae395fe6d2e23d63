package controllers

import (
	"github.com/gin-gonic/gin"

	"flowermarket-backend/pkg/resp"
	"flowermarket-backend/services"
	"flowermarket-backend/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"role":     user.Role,
	})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
			"role":     user.Role,
		},
	})
}

// GET /api/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.UserByID(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"role":     utils.CurrentRole(c),
	})
}
