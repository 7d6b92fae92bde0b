package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendbook/internal/errors"
	"spendbook/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name   string `json:"name" binding:"required,notblank,max=255"`
	Custom bool   `json:"custom"`
}

// ListCategories returns the categories visible to the authenticated
// user: every global category plus the user's own custom ones.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.ListVisible(&userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory returns a single category by ID. Custom categories are
// only returned to their owner.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(id, &userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// CreateCategory creates a category. With "custom": true the category
// is owned by the authenticated user and visible only to them;
// otherwise it is global.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var ownerID *uint
	if req.Custom {
		ownerID = &userID
	}

	category, err := h.categoryService.CreateCategory(req.Name, ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// DeleteCategory removes a category and every record referencing it.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
