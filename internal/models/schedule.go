package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrScheduleTimeRequired 表示建立排程時缺少必要的日期欄位
var ErrScheduleTimeRequired = errors.New("schedule time is required")

// Schedule 表示一筆行程排程記錄
type Schedule struct {
	gorm.Model
	Title       string    `json:"title" gorm:"type:varchar(255)"` // 排程標題，可省略
	Schedule    time.Time `json:"schedule" gorm:"not null"`       // 排程時間，必填
	Protected   bool      `json:"protected" gorm:"default:false"` // 是否為受保護的排程
	Description string    `json:"description" gorm:"type:text"`   // 排程描述，可省略
}

// BeforeCreate 在寫入前檢查必填欄位
// 缺少排程時間的記錄會在持久層被拒絕，不會寫入資料庫
func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.Schedule.IsZero() {
		return ErrScheduleTimeRequired
	}
	return nil
}
