package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/school-intake/config"
	"github.com/sahilchouksey/school-intake/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GORMStore struct {
	db *gorm.DB
}

// StartGORM opens the persistence handle for the configured driver.
// SQLite is the default, PostgreSQL is used when DB_DRIVER=postgres.
func StartGORM(env *config.EnvironmentVariable) (*GORMStore, error) {
	dialector, err := openDialector(env)
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if env.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		// every write is a single INSERT, no wrapping transaction
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		log.Errorf("Unable to open %s database with GORM: %v", env.DB_DRIVER, err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if env.DB_DRIVER == config.DriverPostgres {
		// Connection pool settings
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Infof("Successfully connected to %s database with GORM.", env.DB_DRIVER)

	return &GORMStore{db: db}, nil
}

func openDialector(env *config.EnvironmentVariable) (gorm.Dialector, error) {
	switch env.DB_DRIVER {
	case config.DriverSQLite, "":
		if dir := filepath.Dir(env.DB_PATH); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		// WAL lets readers proceed while a writer holds the lock
		dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", env.DB_PATH)
		return sqlite.Open(dsn), nil

	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			env.DB_HOST,
			env.DB_USER_NAME,
			env.DB_PASSWORD,
			env.DB_NAME,
			env.DB_PORT,
			env.DB_SSL_MODE,
		)
		return postgres.Open(dsn), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", env.DB_DRIVER)
	}
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Info("Closing GORM database connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance
func (s *GORMStore) GetDB() *gorm.DB {
	return s.db
}

// Dialect returns the name of the underlying dialector, "sqlite" or "postgres"
func (s *GORMStore) Dialect() string {
	return s.db.Dialector.Name()
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateAdmission inserts one admission row and fills in its generated ID
func (s *GORMStore) CreateAdmission(ctx context.Context, admission *model.Admission) error {
	if err := s.db.WithContext(ctx).Create(admission).Error; err != nil {
		return fmt.Errorf("insert admission: %w", err)
	}
	return nil
}

// CreateFee inserts one fee row and fills in its generated ID
func (s *GORMStore) CreateFee(ctx context.Context, fee *model.Fee) error {
	if err := s.db.WithContext(ctx).Create(fee).Error; err != nil {
		return fmt.Errorf("insert fee: %w", err)
	}
	return nil
}
