package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleBeforeCreateRequiresTime(t *testing.T) {
	schedule := &Schedule{Title: "no date"}

	err := schedule.BeforeCreate(nil)
	assert.ErrorIs(t, err, ErrScheduleTimeRequired)
}

func TestScheduleBeforeCreateAcceptsValidTime(t *testing.T) {
	schedule := &Schedule{
		Schedule: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.NoError(t, schedule.BeforeCreate(nil))
}

func TestScheduleJSONFieldNames(t *testing.T) {
	schedule := Schedule{
		Title:    "standup",
		Schedule: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(schedule)
	require.NoError(t, err)

	// 欄位名稱與日期格式跟客戶端約定的一致
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "standup", decoded["title"])
	assert.Equal(t, "2025-01-01T00:00:00Z", decoded["schedule"])
	assert.Equal(t, false, decoded["protected"])
}
