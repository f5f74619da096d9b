package service

import (
	"chat_schedule/internal/repository"
)

type Services struct {
	WebSocketManager *WebSocketManager
}

func NewServices(repos *repository.Repositories) *Services {
	wsManager := NewWebSocketManager(repos.Schedule)

	return &Services{
		WebSocketManager: wsManager,
	}
}
