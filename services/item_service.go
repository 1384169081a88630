package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ItemService quản lý danh mục và item tiêu hao trong phòng
type ItemService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type ItemServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewItemService(opts ItemServiceOptions) *ItemService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ItemService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: l,
	}
}

// CreateItemCategory tạo danh mục mới. Check trùng tên (không phân biệt
// hoa thường, chỉ xét danh mục active) và insert chạy chung một
// transaction để thu hẹp race read-then-write.
func (s *ItemService) CreateItemCategory(ctx context.Context, name string, description *string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperrors.NewInvalidInput("Invalid category name")
	}

	category := models.ItemCategory{
		Name:     name,
		IsActive: true,
	}
	if description != nil {
		category.Description = *description
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ItemCategory{}).
			Where("LOWER(name) = LOWER(?) AND is_active = ?", name, true).
			Count(&count).Error; err != nil {
			return apperrors.Internal("Failed to create category", err)
		}
		if count > 0 {
			return apperrors.NewConflict("Category name already exists")
		}

		if err := tx.Create(&category).Error; err != nil {
			return apperrors.Internal("Failed to create category", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.invalidateCache(ctx, CacheKeyCategories)
	return category.ID, nil
}

// GetItemCategories trả về các danh mục active, sắp theo tên.
// Danh sách rỗng là kết quả hợp lệ.
func (s *ItemService) GetItemCategories(ctx context.Context) ([]dto.ItemCategoryResponse, error) {
	var categories []dto.ItemCategoryResponse

	if s.cacheGet(ctx, CacheKeyCategories, &categories) && categories != nil {
		return categories, nil
	}

	err := s.db.WithContext(ctx).Model(&models.ItemCategory{}).
		Where("is_active = ?", true).
		Order("name").
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch categories", err)
	}
	if categories == nil {
		categories = []dto.ItemCategoryResponse{}
	}

	s.cacheSet(ctx, CacheKeyCategories, categories)
	return categories, nil
}

// CreateItem tạo item mới trong một danh mục active. CategoryID và
// unitPrice nhận dạng chuỗi và được parse tại đây.
func (s *ItemService) CreateItem(ctx context.Context, name, categoryID, unitPrice string, description *string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperrors.NewInvalidInput("Invalid item name")
	}

	catID, err := strconv.Atoi(strings.TrimSpace(categoryID))
	if err != nil || catID <= 0 {
		return 0, apperrors.NewInvalidInput("Invalid category ID")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(unitPrice), 64)
	if err != nil || price <= 0 {
		return 0, apperrors.NewInvalidInput("Unit price must be greater than 0")
	}

	item := models.Item{
		Name:       name,
		CategoryID: uint(catID),
		UnitPrice:  price,
		IsActive:   true,
	}
	if description != nil {
		item.Description = *description
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ItemCategory{}).
			Where("id = ? AND is_active = ?", catID, true).
			Count(&count).Error; err != nil {
			return apperrors.Internal("Failed to create item", err)
		}
		if count == 0 {
			return apperrors.NewNotFound("Category not found or inactive")
		}

		if err := tx.Model(&models.Item{}).
			Where("LOWER(name) = LOWER(?) AND category_id = ? AND is_active = ?", name, catID, true).
			Count(&count).Error; err != nil {
			return apperrors.Internal("Failed to create item", err)
		}
		if count > 0 {
			return apperrors.NewConflict("Item name already exists in this category")
		}

		if err := tx.Create(&item).Error; err != nil {
			return apperrors.Internal("Failed to create item", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.invalidateCache(ctx, CacheKeyItemsAll)
	return item.ID, nil
}

// GetItems trả về item active kèm id/tên danh mục, lọc theo danh mục
// nếu categoryID khác rỗng, sắp theo tên item.
func (s *ItemService) GetItems(ctx context.Context, categoryID string) ([]dto.ItemResponse, error) {
	var catID int
	filtered := strings.TrimSpace(categoryID) != ""

	if filtered {
		var err error
		catID, err = strconv.Atoi(strings.TrimSpace(categoryID))
		if err != nil {
			return nil, apperrors.NewInvalidInput("Invalid category ID")
		}

		var count int64
		if err := s.db.WithContext(ctx).Model(&models.ItemCategory{}).
			Where("id = ? AND is_active = ?", catID, true).
			Count(&count).Error; err != nil {
			return nil, apperrors.Internal("Failed to fetch items", err)
		}
		if count == 0 {
			return nil, apperrors.NewNotFound("Category not found or inactive")
		}
	}

	var items []dto.ItemResponse
	if !filtered && s.cacheGet(ctx, CacheKeyItemsAll, &items) && items != nil {
		return items, nil
	}

	query := s.db.WithContext(ctx).Table("items").
		Select("items.id, items.name, items.unit_price, items.description, items.is_active, item_categories.id AS category_id, item_categories.name AS category_name").
		Joins("JOIN item_categories ON item_categories.id = items.category_id").
		Where("items.is_active = ?", true)
	if filtered {
		query = query.Where("items.category_id = ?", catID)
	}

	if err := query.Order("items.name").Scan(&items).Error; err != nil {
		return nil, apperrors.Internal("Failed to fetch items", err)
	}
	if items == nil {
		items = []dto.ItemResponse{}
	}

	if !filtered {
		s.cacheSet(ctx, CacheKeyItemsAll, items)
	}
	return items, nil
}

func (s *ItemService) cacheGet(ctx context.Context, key string, target interface{}) bool {
	if s.rdb == nil {
		return false
	}
	if err := GetFromRedis(ctx, s.rdb, key, target); err != nil {
		s.logger.Debug("cache read %s failed: %v", key, err)
		return false
	}
	return true
}

func (s *ItemService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	if err := SetToRedis(ctx, s.rdb, key, value, 60*time.Minute); err != nil {
		s.logger.Error("cache write %s failed: %v", key, err)
	}
}

func (s *ItemService) invalidateCache(ctx context.Context, keys ...string) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, keys...); err != nil {
		s.logger.Error("cache invalidation failed: %v", err)
	}
}
