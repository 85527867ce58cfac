package database

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

// Column names are quoted so the camelCase spelling survives on PostgreSQL,
// which folds unquoted identifiers to lower case.

var sqliteTables = []string{
	`
	CREATE TABLE IF NOT EXISTS admissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		"studentName" TEXT NOT NULL,
		"dob" TEXT NOT NULL,
		"gender" TEXT NOT NULL,
		"class" TEXT NOT NULL,
		"fatherName" TEXT NOT NULL,
		"motherName" TEXT NOT NULL,
		"phone" TEXT NOT NULL,
		"email" TEXT,
		"address" TEXT NOT NULL,
		"previousSchool" TEXT,
		"lastClass" TEXT,
		"createdAt" TEXT NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS fees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		"studentId" TEXT NOT NULL,
		"studentName" TEXT NOT NULL,
		"class" TEXT NOT NULL,
		"amount" REAL NOT NULL,
		"paymentMethod" TEXT NOT NULL,
		"createdAt" TEXT NOT NULL
	);
	`,
}

var postgresTables = []string{
	`
	CREATE TABLE IF NOT EXISTS admissions (
		id BIGINT PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
		"studentName" TEXT NOT NULL,
		"dob" TEXT NOT NULL,
		"gender" TEXT NOT NULL,
		"class" TEXT NOT NULL,
		"fatherName" TEXT NOT NULL,
		"motherName" TEXT NOT NULL,
		"phone" TEXT NOT NULL,
		"email" TEXT,
		"address" TEXT NOT NULL,
		"previousSchool" TEXT,
		"lastClass" TEXT,
		"createdAt" TEXT NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS fees (
		id BIGINT PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
		"studentId" TEXT NOT NULL,
		"studentName" TEXT NOT NULL,
		"class" TEXT NOT NULL,
		"amount" DOUBLE PRECISION NOT NULL,
		"paymentMethod" TEXT NOT NULL,
		"createdAt" TEXT NOT NULL
	);
	`,
}

// Init creates the admissions and fees tables when they are missing.
// Existing tables and rows are left untouched, so it is safe on every startup.
func (s *GORMStore) Init() error {
	dialect := s.Dialect()
	log.Infof("Initializing %s database tables", dialect)

	tables, err := tablesFor(dialect)
	if err != nil {
		return err
	}

	for _, ddl := range tables {
		if err := s.db.Exec(ddl).Error; err != nil {
			log.Errorf("Error creating tables: %v", err)
			return fmt.Errorf("create tables: %w", err)
		}
	}

	log.Info("Database tables are ready")
	return nil
}

func tablesFor(dialect string) ([]string, error) {
	switch dialect {
	case "sqlite":
		return sqliteTables, nil
	case "postgres":
		return postgresTables, nil
	default:
		return nil, fmt.Errorf("no schema for dialect %q", dialect)
	}
}
