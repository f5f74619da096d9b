package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chat_schedule/internal/models"
)

func TestRoomCreateAndFindByRoomID(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))

	room := &models.Room{
		RoomID:       "room-1",
		RoomName:     "general",
		Participants: []uint{1, 2},
		Schedules:    []uint{7},
	}
	require.NoError(t, repo.Create(context.Background(), room))

	got, err := repo.FindByRoomID(context.Background(), "room-1")
	require.NoError(t, err)

	assert.Equal(t, "general", got.RoomName)
	assert.False(t, got.IsPrivate)
	assert.Nil(t, got.Password)
	assert.Equal(t, []uint{1, 2}, got.Participants)
	assert.Equal(t, []uint{7}, got.Schedules)
}

func TestRoomFindByRoomIDNotFound(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))

	_, err := repo.FindByRoomID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
