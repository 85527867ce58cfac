package cron

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronManager manages the store maintenance jobs
type CronManager struct {
	cron     *cron.Cron
	db       *gorm.DB
	schedule string
}

// NewCronManager creates a new cron manager.
// schedule uses the six-field format with seconds, e.g. "0 0 * * * *".
func NewCronManager(db *gorm.DB, schedule string) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:     c,
		db:       db,
		schedule: schedule,
	}
}

// Start registers the jobs and starts the scheduler
func (m *CronManager) Start() error {
	log.Info("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Info("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones to finish
func (m *CronManager) Stop() {
	log.Info("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Info("Cron jobs stopped")
}

// Entries returns the number of registered jobs
func (m *CronManager) Entries() int {
	return len(m.cron.Entries())
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// SQLite only: fold the WAL back into the main database file
	if m.db.Dialector.Name() != "sqlite" {
		log.Info("[CRON] WAL checkpoint skipped, database is not SQLite")
		return nil
	}

	_, err := m.cron.AddFunc(m.schedule, m.runJob("wal_checkpoint", m.CheckpointWAL))
	return err
}

// runJob wraps a job with start/finish logging. Failures are logged and never stop the scheduler.
func (m *CronManager) runJob(name string, job func() (string, error)) func() {
	return func() {
		started := time.Now()
		log.Infof("[CRON] Starting job: %s at %s", name, started.UTC().Format(time.RFC3339))

		message, err := job()
		if err != nil {
			log.Errorf("[CRON] Error in job: %s - %v", name, err)
			return
		}
		log.Infof("[CRON] Completed job: %s in %s - %s", name, time.Since(started).Round(time.Millisecond), message)
	}
}
