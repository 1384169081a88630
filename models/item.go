package models

import "time"

type Item struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name"`
	CategoryID  uint         `json:"categoryId" gorm:"index"`
	UnitPrice   float64      `json:"unit_price"`
	Description string       `json:"description"`
	IsActive    bool         `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	Category    ItemCategory `json:"-" gorm:"foreignKey:CategoryID"`
}
