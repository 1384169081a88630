package controllers

import (
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

// GetRooms GET /api/rooms
func (ctl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctl.service.GetRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rooms)
}
