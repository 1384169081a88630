package models

import "time"

type AuditRecord struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	RoomStayID  uint        `json:"roomStayId" gorm:"index"`
	AuditType   string      `json:"auditType"`
	AuditorName string      `json:"auditorName"`
	AuditTime   time.Time   `json:"auditTime" gorm:"autoCreateTime"`
	Notes       string      `json:"notes"`
	AuditItems  []AuditItem `json:"auditItems" gorm:"foreignKey:AuditRecordID;constraint:OnDelete:CASCADE"`
}

// AuditItem thuộc sở hữu của AuditRecord cha, xóa record là xóa luôn items
type AuditItem struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	AuditRecordID   uint   `json:"auditRecordId" gorm:"index"`
	ItemID          uint   `json:"itemId" gorm:"index"`
	Quantity        int    `json:"quantity"`
	ConditionStatus string `json:"conditionStatus"`
	Notes           string `json:"notes"`
}
