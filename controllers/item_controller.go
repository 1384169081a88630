package controllers

import (
	"strings"

	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	service *services.ItemService
}

func NewItemController(service *services.ItemService) *ItemController {
	return &ItemController{service: service}
}

// CreateItemCategory POST /api/items/categories
func (ctl *ItemController) CreateItemCategory(c *gin.Context) {
	var req dto.CreateItemCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		response.BadRequest(c, "Category name is required")
		return
	}

	categoryID, err := ctl.service.CreateItemCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message":    "Item category created successfully",
		"categoryId": categoryID,
	})
}

// GetItemCategories GET /api/items/categories
func (ctl *ItemController) GetItemCategories(c *gin.Context) {
	categories, err := ctl.service.GetItemCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

// CreateItem POST /api/items
func (ctl *ItemController) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || req.CategoryID == "" || req.UnitPrice == "" {
		response.BadRequest(c, "Name, category ID, and unit price are required")
		return
	}

	itemID, err := ctl.service.CreateItem(c.Request.Context(), req.Name, req.CategoryID.String(), req.UnitPrice.String(), req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message": "Item created successfully",
		"itemId":  itemID,
	})
}

// GetItems GET /api/items?categoryId=
func (ctl *ItemController) GetItems(c *gin.Context) {
	items, err := ctl.service.GetItems(c.Request.Context(), c.Query("categoryId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// SearchItems GET /api/items/search?q=
func (ctl *ItemController) SearchItems(c *gin.Context) {
	results, err := ctl.service.SearchItems(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, results)
}
