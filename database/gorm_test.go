package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sahilchouksey/school-intake/config"
	"github.com/sahilchouksey/school-intake/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) *config.EnvironmentVariable {
	t.Helper()
	return &config.EnvironmentVariable{
		GO_ENV:    "production",
		DB_DRIVER: config.DriverSQLite,
		DB_PATH:   filepath.Join(t.TempDir(), "nested", "data.sqlite"),
	}
}

func openStore(t *testing.T, env *config.EnvironmentVariable) *GORMStore {
	t.Helper()
	store, err := StartGORM(env)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func countTables(t *testing.T, store *GORMStore) int64 {
	t.Helper()
	var n int64
	err := store.GetDB().
		Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('admissions', 'fees')").
		Scan(&n).Error
	require.NoError(t, err)
	return n
}

func sampleAdmission() *model.Admission {
	return &model.Admission{
		StudentName:  "Asha",
		DateOfBirth:  "2012-04-09",
		Gender:       "F",
		AppliedClass: "5",
		FatherName:   "Ravi",
		MotherName:   "Meena",
		Phone:        "9876543210",
		Email:        model.None(),
		Address:      "12 Lake Road",
		CreatedAt:    model.FormatCreatedAt(time.Now()),
	}
}

func TestInitIsIdempotent(t *testing.T) {
	env := testEnv(t)
	store := openStore(t, env)

	require.NoError(t, store.Init())
	require.NoError(t, store.CreateAdmission(context.Background(), sampleAdmission()))

	require.NoError(t, store.Init())
	assert.Equal(t, int64(2), countTables(t, store))

	var rows int64
	require.NoError(t, store.GetDB().Model(&model.Admission{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestInitAcrossRestarts(t *testing.T) {
	env := testEnv(t)

	first, err := StartGORM(env)
	require.NoError(t, err)
	require.NoError(t, first.Init())
	require.NoError(t, first.CreateFee(context.Background(), &model.Fee{
		StudentID: "S1", StudentName: "Asha", AppliedClass: "5",
		Amount: 1500, PaymentMethod: "cash", CreatedAt: model.FormatCreatedAt(time.Now()),
	}))
	require.NoError(t, first.Close())

	second := openStore(t, env)
	require.NoError(t, second.Init())

	var fees []model.Fee
	require.NoError(t, second.GetDB().Find(&fees).Error)
	require.Len(t, fees, 1)
	assert.Equal(t, 1500.0, fees[0].Amount)
}

func TestJournalModeIsWAL(t *testing.T) {
	store := openStore(t, testEnv(t))

	var mode string
	require.NoError(t, store.GetDB().Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)
}

func TestCreateAdmissionAssignsIncreasingIDs(t *testing.T) {
	store := openStore(t, testEnv(t))
	require.NoError(t, store.Init())

	a, b := sampleAdmission(), sampleAdmission()
	require.NoError(t, store.CreateAdmission(context.Background(), a))
	require.NoError(t, store.CreateAdmission(context.Background(), b))

	assert.GreaterOrEqual(t, a.ID, int64(1))
	assert.Greater(t, b.ID, a.ID)
}

func TestOptionalColumnsRoundTrip(t *testing.T) {
	store := openStore(t, testEnv(t))
	require.NoError(t, store.Init())

	in := sampleAdmission()
	in.PreviousSchool = model.Some("Green Valley")
	require.NoError(t, store.CreateAdmission(context.Background(), in))

	var out model.Admission
	require.NoError(t, store.GetDB().First(&out, in.ID).Error)
	assert.False(t, out.Email.IsPresent())
	assert.Equal(t, "Green Valley", out.PreviousSchool.OrElse(""))
	assert.False(t, out.LastClassAttended.IsPresent())

	var nulls int64
	require.NoError(t, store.GetDB().Raw(`SELECT COUNT(*) FROM admissions WHERE "email" IS NULL`).Scan(&nulls).Error)
	assert.Equal(t, int64(1), nulls)
}

func TestCreateWithoutTablesFails(t *testing.T) {
	store := openStore(t, testEnv(t))

	err := store.CreateFee(context.Background(), &model.Fee{StudentID: "S1"})
	assert.ErrorContains(t, err, "insert fee")
}

func TestStartGORMRejectsUnknownDriver(t *testing.T) {
	_, err := StartGORM(&config.EnvironmentVariable{DB_DRIVER: "oracle"})
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	store := openStore(t, testEnv(t))
	assert.NoError(t, store.HealthCheck())
	assert.Equal(t, "sqlite", store.Dialect())
}
