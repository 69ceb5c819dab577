package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ngo_discovery/config"
)

func TestGetNextTimePoint(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	// Later the same day.
	next := getNextTimePoint(now, 23, 30)
	assert.Equal(t, time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC), next)

	// Already passed today, rolls to tomorrow.
	next = getNextTimePoint(now, 3, 0)
	assert.Equal(t, time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC), next)
}

func TestValidateHourMinute(t *testing.T) {
	h, m := validateHourMinute(3, 30)
	assert.Equal(t, 3, h)
	assert.Equal(t, 30, m)

	h, m = validateHourMinute(25, -1)
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)
}

func TestInitTasks_DebugMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.Debug.Enabled = true
	cfg.Debug.StatsRefreshSec = 10

	s := NewScheduler(cfg)
	s.initTasks()

	status, ok := s.tasks[TaskStatsRefresh]
	assert.True(t, ok)
	assert.False(t, status.IsRunning)
	assert.WithinDuration(t, time.Now().Add(10*time.Second), status.NextRun, 2*time.Second)
}

func TestInitTasks_DailySchedule(t *testing.T) {
	cfg := &config.Config{}
	cfg.Stats.RefreshHour = 4
	cfg.Stats.RefreshMinute = 15

	s := NewScheduler(cfg)
	s.initTasks()

	status, ok := s.tasks[TaskStatsRefresh]
	assert.True(t, ok)
	assert.Equal(t, 4, status.NextRun.Hour())
	assert.Equal(t, 15, status.NextRun.Minute())
	assert.True(t, status.NextRun.After(time.Now().Add(-time.Minute)))
}
