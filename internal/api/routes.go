package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat_schedule/internal/api/handlers"
	"chat_schedule/internal/middleware"
	"chat_schedule/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	wsHandler := handlers.NewWebSocketHandler(services.WebSocketManager)

	// 允許任意來源的跨域請求
	r.Use(middleware.CORSMiddleware())

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 根路徑的問候訊息
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	})

	// WebSocket 連接點
	r.GET("/ws", wsHandler.HandleWebSocket)

	// API 路由群組
	api := r.Group("/api")
	{
		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}
}
