package catalog

import (
	"errors"
	"net/http"

	"hotelpms/internal/modules/booking"
	"hotelpms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/available-rooms", h.AvailableRooms)
	rg.GET("/room-types", h.ListRoomTypes)
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/service-items", h.ListServiceItems)
}

func (h *Handler) AvailableRooms(c *gin.Context) {
	var req AvailableRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	views, err := h.service.AvailableRooms(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": views})
}

func (h *Handler) ListRoomTypes(c *gin.Context) {
	types, err := h.service.ListRoomTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_types": types})
}

func (h *Handler) ListServiceItems(c *gin.Context) {
	items, err := h.service.ListServiceItems(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_items": items})
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}
