package database

import (
	"context"

	"github.com/sahilchouksey/school-intake/model"
	"gorm.io/gorm"
)

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access
	GetDB() *gorm.DB

	// Intake methods, one insert statement each
	CreateAdmission(ctx context.Context, admission *model.Admission) error
	CreateFee(ctx context.Context, fee *model.Fee) error
}
