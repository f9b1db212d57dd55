package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"catalog-service/pkg/logger"
)

// EventScheduler runs maintenance jobs (taxonomy reindex) on cron schedules.
type EventScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	RemoveJob(id string) error
	IsRunning() bool
}

type JobInfo struct {
	ID       string
	CronExpr string
	Job      *gocron.Job
	LastRun  *time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*JobInfo
	mu        sync.RWMutex
	running   bool
}

func NewEventScheduler() EventScheduler {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	return &GocronScheduler{
		scheduler: scheduler,
		jobs:      make(map[string]*JobInfo),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Event scheduler started")
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.scheduler.Stop()
	s.running = false
	logger.Info("Event scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job with ID %s already exists", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Do(func() {
		now := time.Now()
		logger.Info("Executing scheduled job", "job", id)

		s.mu.Lock()
		if jobInfo, exists := s.jobs[id]; exists {
			jobInfo.LastRun = &now
		}
		s.mu.Unlock()

		task()
	})
	if err != nil {
		return fmt.Errorf("failed to create job: %v", err)
	}

	s.jobs[id] = &JobInfo{
		ID:       id,
		CronExpr: cronExpr,
		Job:      job,
	}

	logger.Info("Job scheduled", "job", id, "cron", cronExpr)
	return nil
}

func (s *GocronScheduler) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobInfo, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job with ID %s not found", id)
	}

	if jobInfo.Job != nil {
		s.scheduler.RemoveByReference(jobInfo.Job)
	}
	delete(s.jobs, id)
	return nil
}
