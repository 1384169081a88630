package routes

import (
	"net/http"
	"time"

	"hms/controllers"
	"hms/services"
	"hms/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {
	l := logger.NewDefaultLogger(logger.InfoLevel)

	itemController := controllers.NewItemController(services.NewItemService(services.ItemServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: l,
	}))
	roomController := controllers.NewRoomController(services.NewRoomService(services.RoomServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: l,
	}))
	roomStayController := controllers.NewRoomStayController(services.NewRoomStayService(services.RoomStayServiceOptions{
		DB:          db,
		Redis:       redisCli,
		Logger:      l,
		Broadcaster: m,
	}))
	auditController := controllers.NewAuditController(services.NewAuditService(services.AuditServiceOptions{
		DB:     db,
		Logger: l,
	}))

	items := router.Group("/api/items")
	items.POST("/categories", itemController.CreateItemCategory)
	items.GET("/categories", itemController.GetItemCategories)
	items.GET("/search", itemController.SearchItems)
	items.POST("", itemController.CreateItem)
	items.GET("", itemController.GetItems)

	rooms := router.Group("/api/rooms")
	rooms.GET("", roomController.GetRooms)

	roomStays := router.Group("/api/room-stays")
	roomStays.POST("/check-in", roomStayController.CheckInGuest)
	roomStays.POST("/check-out/:roomStayId", roomStayController.CheckOutGuest)

	audits := router.Group("/api/audits")
	audits.POST("/check-in", auditController.CreateCheckInAudit)
	audits.POST("/check-out", auditController.CreateCheckOutAudit)
	audits.GET("/compare/:roomStayId", auditController.CompareAudits)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now(),
		})
	})
}
