package controllers

import (
	"strconv"
	"strings"

	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

type RoomStayController struct {
	service *services.RoomStayService
}

func NewRoomStayController(service *services.RoomStayService) *RoomStayController {
	return &RoomStayController{service: service}
}

// CheckInGuest POST /api/room-stays/check-in
func (ctl *RoomStayController) CheckInGuest(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.RoomID == 0 || strings.TrimSpace(req.GuestName) == "" {
		response.BadRequest(c, "Room ID and guest name are required")
		return
	}

	roomStayID, err := ctl.service.CheckInGuest(c.Request.Context(), req.RoomID, strings.TrimSpace(req.GuestName), req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CheckInResponse{
		Message:    "Guest checked in successfully",
		RoomStayID: roomStayID,
	})
}

// CheckOutGuest POST /api/room-stays/check-out/:roomStayId
func (ctl *RoomStayController) CheckOutGuest(c *gin.Context) {
	roomStayID, err := strconv.ParseUint(c.Param("roomStayId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room stay ID")
		return
	}

	message, err := ctl.service.CheckOutGuest(c.Request.Context(), uint(roomStayID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CheckOutResponse{Message: message})
}
