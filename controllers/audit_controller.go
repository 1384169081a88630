package controllers

import (
	"strconv"

	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

type AuditController struct {
	service *services.AuditService
}

func NewAuditController(service *services.AuditService) *AuditController {
	return &AuditController{service: service}
}

// CreateCheckInAudit POST /api/audits/check-in
func (ctl *AuditController) CreateCheckInAudit(c *gin.Context) {
	var req dto.CreateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auditID, err := ctl.service.CreateCheckInAudit(c.Request.Context(), req.RoomStayID, req.AuditorName, req.Notes, req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateAuditResponse{
		Message: "Check-in audit created successfully",
		AuditID: auditID,
	})
}

// CreateCheckOutAudit POST /api/audits/check-out
func (ctl *AuditController) CreateCheckOutAudit(c *gin.Context) {
	var req dto.CreateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auditID, err := ctl.service.CreateCheckOutAudit(c.Request.Context(), req.RoomStayID, req.AuditorName, req.Notes, req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateAuditResponse{
		Message: "Check-out audit created successfully",
		AuditID: auditID,
	})
}

// CompareAudits GET /api/audits/compare/:roomStayId
func (ctl *AuditController) CompareAudits(c *gin.Context) {
	roomStayID, err := strconv.ParseUint(c.Param("roomStayId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room stay ID")
		return
	}

	result, err := ctl.service.CompareAudits(c.Request.Context(), uint(roomStayID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
