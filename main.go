package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"chat_schedule/internal/api"
	"chat_schedule/internal/models"
	"chat_schedule/internal/repository"
	"chat_schedule/internal/service"
	"chat_schedule/internal/storage"
	"chat_schedule/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從環境變數或配置文件中讀取設置，如數據庫連接信息和服務器埠號等
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	// 使用配置中的連接字串建立到 PostgreSQL 數據庫的連接
	db, err := storage.NewPostgresDB(cfg.DB.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	// 這裡遷移 Schedule 和 Room 兩個模型
	if err := db.AutoMigrate(&models.Schedule{}, &models.Room{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories
	repos := repository.NewRepositories(db)

	// 初始化 services
	services := service.NewServices(repos)
	services.WebSocketManager.SetCreateTimeout(cfg.Schedule.CreateTimeout)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	// 使用配置中指定的埠號啟動 HTTP 服務器
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
