package jobs

import (
	"context"
	"log"
	"time"

	"hms/constants"
	"hms/models"
	"hms/services"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, db *gorm.DB, rdb *redis.Client) error {
	// Làm nóng lại cache danh sách phòng mỗi giờ
	if _, err := c.AddFunc("0 * * * *", func() {
		warmRoomCache(db, rdb)
	}); err != nil {
		return err
	}

	// Log tổng kết công suất phòng lúc 0h mỗi ngày
	if _, err := c.AddFunc("0 0 * * *", func() {
		logOccupancySummary(db)
	}); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

func warmRoomCache(db *gorm.DB, rdb *redis.Client) {
	if rdb == nil {
		return
	}

	var rooms []models.Room
	if err := db.Order("room_number").Find(&rooms).Error; err != nil {
		log.Printf("Lỗi khi làm nóng cache phòng: %v", err)
		return
	}

	ctx := context.Background()
	if err := services.SetToRedis(ctx, rdb, services.CacheKeyRooms, rooms, 30*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu cache phòng: %v", err)
		return
	}
	log.Printf("Đã làm nóng cache cho %d phòng", len(rooms))
}

func logOccupancySummary(db *gorm.DB) {
	var total, occupied int64
	if err := db.Model(&models.Room{}).Count(&total).Error; err != nil {
		log.Printf("Lỗi khi đếm phòng: %v", err)
		return
	}
	if err := db.Model(&models.Room{}).
		Where("status = ?", constants.RoomStatusOccupied).
		Count(&occupied).Error; err != nil {
		log.Printf("Lỗi khi đếm phòng đang có khách: %v", err)
		return
	}

	log.Printf("Công suất phòng hôm nay: %d/%d đang có khách", occupied, total)
}
