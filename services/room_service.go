package services

import (
	"context"
	"time"

	apperrors "hms/errors"
	"hms/models"
	"hms/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RoomService đọc danh sách phòng, có cache Redis
type RoomService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: l,
	}
}

// GetRooms trả về tất cả phòng, sắp theo room_number
func (s *RoomService) GetRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, CacheKeyRooms, &rooms); err == nil && rooms != nil {
			return rooms, nil
		}
	}

	if err := s.db.WithContext(ctx).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, apperrors.Internal("Failed to fetch rooms", err)
	}
	if rooms == nil {
		rooms = []models.Room{}
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, CacheKeyRooms, rooms, 30*time.Minute); err != nil {
			s.logger.Error("cache write %s failed: %v", CacheKeyRooms, err)
		}
	}
	return rooms, nil
}
