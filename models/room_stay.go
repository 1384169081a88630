package models

import "time"

type RoomStay struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RoomID       uint       `json:"roomId" gorm:"index"`
	GuestName    string     `json:"guestName"`
	CheckInTime  time.Time  `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Room         Room       `json:"-" gorm:"foreignKey:RoomID"`
}
