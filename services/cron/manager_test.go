package cron

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sahilchouksey/school-intake/config"
	"github.com/sahilchouksey/school-intake/database"
	"github.com/sahilchouksey/school-intake/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *database.GORMStore {
	t.Helper()
	store, err := database.StartGORM(&config.EnvironmentVariable{
		GO_ENV:    "production",
		DB_DRIVER: config.DriverSQLite,
		DB_PATH:   filepath.Join(t.TempDir(), "data.sqlite"),
	})
	require.NoError(t, err)
	require.NoError(t, store.Init())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCheckpointWAL(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.CreateFee(context.Background(), &model.Fee{
		StudentID: "S1", StudentName: "A", AppliedClass: "5",
		Amount: 10, PaymentMethod: "cash", CreatedAt: model.FormatCreatedAt(time.Now()),
	}))

	m := NewCronManager(store.GetDB(), config.DefaultWALCheckpointSchedule)
	msg, err := m.CheckpointWAL()
	require.NoError(t, err)
	assert.Contains(t, msg, "frames checkpointed")

	var n int64
	require.NoError(t, store.GetDB().Model(&model.Fee{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestStartRegistersCheckpointJob(t *testing.T) {
	m := NewCronManager(newStore(t).GetDB(), "*/30 * * * * *")
	require.NoError(t, m.Start())
	defer m.Stop()

	assert.Equal(t, 1, m.Entries())
}

func TestStartRejectsBadSchedule(t *testing.T) {
	m := NewCronManager(newStore(t).GetDB(), "every hour")
	assert.Error(t, m.Start())
}
