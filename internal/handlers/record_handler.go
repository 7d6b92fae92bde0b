package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "spendbook/internal/errors"
	"spendbook/internal/services"
)

// RecordHandler handles expense record requests
type RecordHandler struct {
	recordService services.RecordServicer
}

// NewRecordHandler creates a new RecordHandler
func NewRecordHandler(recordService services.RecordServicer) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// CreateRecordRequest represents the request payload for creating a record
type CreateRecordRequest struct {
	UserID     uint    `json:"user_id" binding:"required"`
	CategoryID uint    `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
}

// ListRecords returns records filtered by user and/or category. At
// least one of the user_id and category_id query params is required.
func (h *RecordHandler) ListRecords(c *gin.Context) {
	filter, err := parseRecordFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.recordService.ListRecords(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// GetRecord returns a single record by ID.
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.GetRecordByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// CreateRecord creates an expense record for an existing user and category.
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.recordService.CreateRecord(req.UserID, req.CategoryID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"record": record})
}

// DeleteRecord removes a record.
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recordService.DeleteRecord(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseRecordFilter reads the optional user_id and category_id query
// params. Presence with a non-integer value is a validation error; the
// at-least-one rule is enforced by the service.
func parseRecordFilter(c *gin.Context) (services.RecordFilter, error) {
	var filter services.RecordFilter

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id must be a positive integer")
		}
		uid := uint(id)
		filter.UserID = &uid
	}

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id must be a positive integer")
		}
		cid := uint(id)
		filter.CategoryID = &cid
	}

	return filter, nil
}
