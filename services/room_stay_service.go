package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hms/constants"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StayBroadcaster đẩy sự kiện check-in / check-out cho các client đang
// theo dõi. *melody.Melody thỏa interface này.
type StayBroadcaster interface {
	Broadcast(msg []byte) error
}

// RoomStayService quản lý vòng đời stay: check-in và check-out. Mọi
// thay đổi trạng thái phòng đi kèm bản ghi stay trong cùng transaction.
type RoomStayService struct {
	db          *gorm.DB
	rdb         *redis.Client
	logger      logger.Logger
	broadcaster StayBroadcaster
}

type RoomStayServiceOptions struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Logger      logger.Logger
	Broadcaster StayBroadcaster
}

func NewRoomStayService(opts RoomStayServiceOptions) *RoomStayService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomStayService{
		db:          opts.DB,
		rdb:         opts.Redis,
		logger:      l,
		broadcaster: opts.Broadcaster,
	}
}

// lockForUpdate khóa row kiểu SELECT ... FOR UPDATE. SQLite không có
// row lock, mọi ghi tuần tự trên database lock nên bỏ qua clause.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CheckInGuest nhận khách vào phòng. Row phòng bị khóa suốt transaction:
// hai check-in đồng thời trên cùng phòng sẽ tuần tự hóa và request thua
// nhìn thấy trạng thái không còn AVAILABLE.
func (s *RoomStayService) CheckInGuest(ctx context.Context, roomID uint, guestName, notes string) (uint, error) {
	var stay models.RoomStay
	var room models.Room

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Room not found")
			}
			return apperrors.Internal("Failed to check in guest", err)
		}

		if err := models.GetRoomState(room.Status).CheckIn(&room); err != nil {
			return apperrors.NewInvalidState(err.Error())
		}

		stay = models.RoomStay{
			RoomID:      room.ID,
			GuestName:   guestName,
			CheckInTime: time.Now(),
			Status:      constants.StayStatusCheckedIn,
			Notes:       notes,
		}
		if err := tx.Create(&stay).Error; err != nil {
			return apperrors.Internal("Failed to check in guest", err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("status", room.Status).Error; err != nil {
			return apperrors.Internal("Failed to check in guest", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.afterTransition(ctx, "CHECK_IN", &room, stay.ID)
	return stay.ID, nil
}

// CheckOutGuest trả phòng cho một stay đang CHECKED_IN. Chuyển trạng
// thái một chiều, không check-in lại được cùng một stay.
func (s *RoomStayService) CheckOutGuest(ctx context.Context, roomStayID uint) (string, error) {
	var stay models.RoomStay
	var room models.Room

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&stay, roomStayID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Room stay not found")
			}
			return apperrors.Internal("Failed to check out guest", err)
		}
		if err := lockForUpdate(tx).First(&room, stay.RoomID).Error; err != nil {
			return apperrors.Internal("Failed to check out guest", err)
		}

		now := time.Now()
		if err := models.GetStayState(stay.Status).CheckOut(&stay, now); err != nil {
			return apperrors.NewInvalidState(err.Error())
		}
		if err := models.GetRoomState(room.Status).CheckOut(&room); err != nil {
			// Phòng đã trống sẵn thì giữ nguyên
			room.Status = constants.RoomStatusAvailable
		}

		if err := tx.Model(&models.RoomStay{}).Where("id = ?", stay.ID).
			Updates(map[string]interface{}{
				"status":         stay.Status,
				"check_out_time": stay.CheckOutTime,
			}).Error; err != nil {
			return apperrors.Internal("Failed to check out guest", err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("status", room.Status).Error; err != nil {
			return apperrors.Internal("Failed to check out guest", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.afterTransition(ctx, "CHECK_OUT", &room, stay.ID)
	return "Check-out successful", nil
}

// afterTransition chạy sau khi commit: xóa cache phòng và đẩy sự kiện ws
func (s *RoomStayService) afterTransition(ctx context.Context, event string, room *models.Room, stayID uint) {
	if s.rdb != nil {
		if err := DeleteFromRedis(ctx, s.rdb, CacheKeyRooms); err != nil {
			s.logger.Error("cache invalidation failed: %v", err)
		}
	}

	if s.broadcaster != nil {
		payload, err := json.Marshal(dto.StayEvent{
			Event:      event,
			RoomID:     room.ID,
			RoomStayID: stayID,
			RoomStatus: room.Status,
		})
		if err == nil {
			if err := s.broadcaster.Broadcast(payload); err != nil {
				s.logger.Debug("broadcast %s failed: %v", event, err)
			}
		}
	}

	s.logger.Info("%s room=%d stay=%d status=%s", event, room.ID, stayID, room.Status)
}
