package repository

import "chat_schedule/internal/storage"

type Repositories struct {
	Schedule ScheduleRepository
	Room     RoomRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Schedule: NewScheduleRepository(db),
		Room:     NewRoomRepository(db),
	}
}
