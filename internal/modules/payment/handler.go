package payment

import (
	"errors"
	"net/http"

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

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/vnpay/create-payment", h.CreatePayment)
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vnpay/return", h.Return)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	resp, err := h.service.CreatePayment(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Return(c *gin.Context) {
	res, err := h.service.HandleReturn(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidSignature):
		response.Error(c, http.StatusForbidden, "INVALID_SIGNATURE", "Callback signature verification failed")
	case errors.Is(err, ErrAmountMismatch):
		response.Error(c, http.StatusBadRequest, "AMOUNT_MISMATCH", "Callback amount does not match the payment")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking cannot be paid in its current status")
	case errors.Is(err, ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, "GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment or booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
	}
}
