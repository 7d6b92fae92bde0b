package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendbook/internal/errors"
	"spendbook/internal/middleware"
	"spendbook/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// Register handles user registration. On success it returns the new
// user together with a bearer token so the client can start making
// authenticated calls immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.Register(req.Name, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateAccessToken(user.ID)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"created_at": user.CreatedAt,
		},
		"access_token": token,
	})
}

// Login authenticates a user and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.Authenticate(req.Name, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateAccessToken(user.ID)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
	})
}
