package cron

import (
	"fmt"
)

// CheckpointResult mirrors the row returned by PRAGMA wal_checkpoint
type CheckpointResult struct {
	Busy         int `gorm:"column:busy"`
	Log          int `gorm:"column:log"`
	Checkpointed int `gorm:"column:checkpointed"`
}

// CheckpointWAL copies committed WAL frames into the database file and truncates the WAL
func (m *CronManager) CheckpointWAL() (string, error) {
	var result CheckpointResult
	if err := m.db.Raw("PRAGMA wal_checkpoint(TRUNCATE)").Scan(&result).Error; err != nil {
		return "", fmt.Errorf("wal checkpoint: %w", err)
	}
	if result.Busy != 0 {
		return "", fmt.Errorf("wal checkpoint: database busy, %d of %d frames checkpointed", result.Checkpointed, result.Log)
	}
	return fmt.Sprintf("%d frames checkpointed", result.Checkpointed), nil
}
