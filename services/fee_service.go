package services

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/school-intake/database"
	"github.com/sahilchouksey/school-intake/model"
	"github.com/sahilchouksey/school-intake/utils/validation"
)

// FeeRequest represents the request body for recording a fee payment.
// Amount accepts a JSON number or a numeric string such as "5.5".
type FeeRequest struct {
	StudentID     model.Text `json:"studentId" validate:"required"`
	StudentName   model.Text `json:"studentName" validate:"required"`
	AppliedClass  model.Text `json:"class" validate:"required"`
	Amount        model.Text `json:"amount" validate:"required"`
	PaymentMethod model.Text `json:"paymentMethod" validate:"required"`
}

func (r FeeRequest) trimmed() FeeRequest {
	return FeeRequest{
		StudentID:     clean(r.StudentID),
		StudentName:   clean(r.StudentName),
		AppliedClass:  clean(r.AppliedClass),
		Amount:        clean(r.Amount),
		PaymentMethod: clean(r.PaymentMethod),
	}
}

// FeeService validates and stores fee payments
type FeeService struct {
	store     database.Storage
	validator *validation.Validator
	now       func() time.Time
}

// NewFeeService creates a new fee service
func NewFeeService(store database.Storage) *FeeService {
	return &FeeService{
		store:     store,
		validator: validation.NewValidator(),
		now:       time.Now,
	}
}

// Submit checks presence first, then the amount, then inserts one fee row
func (s *FeeService) Submit(ctx context.Context, req FeeRequest) (*model.Fee, error) {
	req = req.trimmed()

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, missingFieldsError(err)
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	fee := &model.Fee{
		StudentID:     string(req.StudentID),
		StudentName:   string(req.StudentName),
		AppliedClass:  string(req.AppliedClass),
		Amount:        amount,
		PaymentMethod: string(req.PaymentMethod),
		CreatedAt:     model.FormatCreatedAt(s.now()),
	}

	if err := s.store.CreateFee(ctx, fee); err != nil {
		return nil, err
	}

	log.Debugf("fee %d stored for student %s", fee.ID, fee.StudentID)
	return fee, nil
}

// ParseAmount coerces t to a finite number strictly greater than zero
func ParseAmount(t model.Text) (float64, error) {
	v, err := strconv.ParseFloat(t.Trimmed(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
