package models

import (
	"fmt"
	"time"

	"hms/constants"
)

type Room struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	RoomNumber string     `json:"room_number" gorm:"index"`
	Status     string     `json:"status" gorm:"default:AVAILABLE"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomStays  []RoomStay `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status != constants.RoomStatusAvailable && r.Status != constants.RoomStatusOccupied {
		return fmt.Errorf("invalid status: %s, must be AVAILABLE or OCCUPIED", r.Status)
	}
	return nil
}
