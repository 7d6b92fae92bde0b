package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendbook/internal/services"
)

// UserHandler handles user management requests
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns all users. The password hash is excluded from the
// model's JSON representation.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser returns a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a user and cascades to the user's records and
// custom categories.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
