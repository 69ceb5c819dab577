package scheduler

import (
	"fmt"
	"sync"
	"time"

	"ngo_discovery/config"
	"ngo_discovery/logger"
	"ngo_discovery/repository"
)

// validateHourMinute clamps an out-of-range schedule time to midnight.
func validateHourMinute(hour, minute int) (int, int) {
	if hour < 0 || hour > 23 {
		logger.Warn("Invalid refresh hour, using 0", "hour", hour)
		hour = 0
	}
	if minute < 0 || minute > 59 {
		logger.Warn("Invalid refresh minute, using 0", "minute", minute)
		minute = 0
	}
	return hour, minute
}

// getNextTimePoint finds the next occurrence of the daily time point.
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Task types
type TaskType int

const (
	TaskStatsRefresh TaskType = iota
)

// TaskStatus tracks one scheduled task.
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// Scheduler runs the periodic maintenance tasks: recomputing the denormalized
// organization statistics the recommendation scorer reads.
type Scheduler struct {
	cfg   *config.Config
	tasks map[TaskType]*TaskStatus
	mutex sync.Mutex
}

// NewScheduler builds a scheduler from configuration.
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		tasks: make(map[TaskType]*TaskStatus),
	}
}

// Start launches the scheduler loop in the background.
func Start(cfg *config.Config) {
	scheduler := NewScheduler(cfg)
	scheduler.initTasks()
	go scheduler.run()

	checkInterval := cfg.Stats.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60
	}
	logger.Info("Scheduler started", "check_interval_sec", checkInterval)
}

func (s *Scheduler) initTasks() {
	now := time.Now()

	if s.cfg.Debug.Enabled {
		// Debug mode: refresh at a short fixed interval.
		freqSeconds := s.cfg.Debug.StatsRefreshSec
		if freqSeconds <= 0 {
			freqSeconds = 300
		}
		interval := time.Duration(freqSeconds) * time.Second

		s.tasks[TaskStatsRefresh] = &TaskStatus{
			LastRun:     now.Add(-interval),
			NextRun:     now.Add(interval),
			Description: fmt.Sprintf("NGO stats refresh (debug mode: every %ds)", freqSeconds),
		}
		logger.Info("Debug mode enabled", "stats_refresh_sec", freqSeconds)
	} else {
		hour, minute := validateHourMinute(s.cfg.Stats.RefreshHour, s.cfg.Stats.RefreshMinute)
		nextRun := getNextTimePoint(now, hour, minute)

		s.tasks[TaskStatsRefresh] = &TaskStatus{
			LastRun:     nextRun.Add(-24 * time.Hour),
			NextRun:     nextRun,
			Description: fmt.Sprintf("NGO stats refresh (%02d:%02d daily)", hour, minute),
		}
		logger.Info("Stats refresh scheduled", "time", fmt.Sprintf("%02d:%02d", hour, minute))
	}

	logger.Info("Scheduled tasks initialized", "task_count", len(s.tasks))
}

func (s *Scheduler) run() {
	checkInterval := s.cfg.Stats.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60
	}
	ticker := time.NewTicker(time.Duration(checkInterval) * time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		if status.IsRunning {
			continue
		}
		if status.NextRun.IsZero() {
			continue
		}
		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		switch taskType {
		case TaskStatsRefresh:
			if s.cfg.Debug.Enabled {
				freqSeconds := s.cfg.Debug.StatsRefreshSec
				if freqSeconds <= 0 {
					freqSeconds = 300
				}
				status.NextRun = now.Add(time.Duration(freqSeconds) * time.Second)
			} else {
				hour, minute := validateHourMinute(s.cfg.Stats.RefreshHour, s.cfg.Stats.RefreshMinute)
				status.NextRun = getNextTimePoint(now, hour, minute)
			}
		}

		logger.Info("Task finished", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskStatsRefresh:
		logger.Info("Refreshing NGO statistics")
		updated, err := repository.RefreshNGOStats()
		if err != nil {
			logger.Error("NGO stats refresh failed", "error", err)
			return
		}
		logger.Info("NGO statistics refreshed", "rows", updated)
	}
}
