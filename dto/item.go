package dto

import "encoding/json"

type CreateItemCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CreateItemRequest struct {
	Name        string      `json:"name"`
	CategoryID  json.Number `json:"categoryId"`
	UnitPrice   json.Number `json:"unitPrice"`
	Description *string     `json:"description"`
}

type ItemCategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// ItemResponse là item kèm thông tin category đang active của nó
type ItemResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	Description  string  `json:"description"`
	IsActive     bool    `json:"is_active"`
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

// ItemSearchResult là item kèm điểm phù hợp với từ khóa tìm kiếm
type ItemSearchResult struct {
	ItemResponse
	Score float64 `json:"score"`
}
