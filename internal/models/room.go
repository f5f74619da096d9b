package models

import (
	"gorm.io/gorm"
)

// Room 表示一個聊天房間
//
// 目前沒有任何事件處理器會建立或查詢房間，
// 這個模型只參與資料庫遷移，保留給之後的房間功能使用。
type Room struct {
	gorm.Model
	RoomID    string  `json:"roomId" gorm:"uniqueIndex"`      // 房間的唯一識別碼
	RoomName  string  `json:"roomName"`                       // 房間名稱
	IsPrivate bool    `json:"isPrivate" gorm:"default:false"` // 是否為私人房間
	Password  *string `json:"password"`                       // 私人房間的密碼，公開房間為 null

	// 弱引用：只記錄相關實體的 ID 列表，不管理它們的生命週期
	Participants []uint `json:"participants" gorm:"serializer:json"` // 參與者的用戶 ID 列表
	Messages     []uint `json:"messages" gorm:"serializer:json"`     // 訊息 ID 列表
	Schedules    []uint `json:"schedules" gorm:"serializer:json"`    // 排程 ID 列表
}
