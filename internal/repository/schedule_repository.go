package repository

import (
	"context"

	"chat_schedule/internal/models"
	"chat_schedule/internal/storage"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	FindByID(ctx context.Context, id uint) (*models.Schedule, error)
}

type scheduleRepository struct {
	db *storage.PostgresDB
}

func NewScheduleRepository(db *storage.PostgresDB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.WithContext(ctx).First(&schedule, id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}
