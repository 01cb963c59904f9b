package frontdesk

import (
	"errors"
	"net/http"
	"strconv"

	"hotelpms/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/check-in/:id", h.CheckinPreview)
	rg.POST("/check-in/:id", h.CommitCheckin)
	rg.GET("/check-out/:id", h.CheckoutPreview)
	rg.POST("/pay-cash/:id", h.PayCash)
}

func (h *Handler) CheckinPreview(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	v, err := h.service.CheckinPreview(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) CommitCheckin(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req CommitCheckinRequest
	_ = c.ShouldBindJSON(&req)

	v, err := h.service.CommitCheckin(c.Request.Context(), id, req.ConfirmEarly)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": v})
}

func (h *Handler) CheckoutPreview(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	v, err := h.service.CheckoutPreview(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) PayCash(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	res, err := h.service.PayCash(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	var early *EarlyCheckinError
	switch {
	case errors.As(err, &early):
		response.ErrorWithDetails(c, http.StatusConflict, "EARLY_CHECKIN",
			"Check-in time has not been reached", gin.H{
				"days":    early.Wait.Days,
				"hours":   early.Wait.Hours,
				"minutes": early.Wait.Minutes,
				"wait":    early.Wait.String(),
			})
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Action is not permitted in the current booking status")
	case errors.Is(err, ErrIncompleteData):
		response.Error(c, http.StatusUnprocessableEntity, "INCOMPLETE_DATA", "Booking data is incomplete")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
	}
}
