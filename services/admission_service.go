package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/school-intake/database"
	"github.com/sahilchouksey/school-intake/model"
	"github.com/sahilchouksey/school-intake/utils/validation"
)

// AdmissionRequest represents the request body for submitting an admission
type AdmissionRequest struct {
	StudentName    model.Text `json:"studentName" validate:"required"`
	DateOfBirth    model.Text `json:"dob" validate:"required"`
	Gender         model.Text `json:"gender" validate:"required"`
	AppliedClass   model.Text `json:"class" validate:"required"`
	FatherName     model.Text `json:"fatherName" validate:"required"`
	MotherName     model.Text `json:"motherName" validate:"required"`
	Phone          model.Text `json:"phone" validate:"required"`
	Email          model.Text `json:"email"`
	Address        model.Text `json:"address" validate:"required"`
	PreviousSchool model.Text `json:"previousSchool"`
	LastClass      model.Text `json:"lastClass"`
}

// trimmed returns a copy with every field sanitized, so "required" means non-blank
func (r AdmissionRequest) trimmed() AdmissionRequest {
	return AdmissionRequest{
		StudentName:    clean(r.StudentName),
		DateOfBirth:    clean(r.DateOfBirth),
		Gender:         clean(r.Gender),
		AppliedClass:   clean(r.AppliedClass),
		FatherName:     clean(r.FatherName),
		MotherName:     clean(r.MotherName),
		Phone:          clean(r.Phone),
		Email:          clean(r.Email),
		Address:        clean(r.Address),
		PreviousSchool: clean(r.PreviousSchool),
		LastClass:      clean(r.LastClass),
	}
}

// AdmissionService validates and stores admission applications
type AdmissionService struct {
	store     database.Storage
	validator *validation.Validator
	now       func() time.Time
}

// NewAdmissionService creates a new admission service
func NewAdmissionService(store database.Storage) *AdmissionService {
	return &AdmissionService{
		store:     store,
		validator: validation.NewValidator(),
		now:       time.Now,
	}
}

// Submit validates req and inserts one admission row.
// It returns ErrMissingFields (wrapped) without touching the store when a required field is blank.
func (s *AdmissionService) Submit(ctx context.Context, req AdmissionRequest) (*model.Admission, error) {
	req = req.trimmed()

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, missingFieldsError(err)
	}

	admission := &model.Admission{
		StudentName:       string(req.StudentName),
		DateOfBirth:       string(req.DateOfBirth),
		Gender:            string(req.Gender),
		AppliedClass:      string(req.AppliedClass),
		FatherName:        string(req.FatherName),
		MotherName:        string(req.MotherName),
		Phone:             string(req.Phone),
		Email:             model.OptionalFromText(req.Email),
		Address:           string(req.Address),
		PreviousSchool:    model.OptionalFromText(req.PreviousSchool),
		LastClassAttended: model.OptionalFromText(req.LastClass),
		CreatedAt:         model.FormatCreatedAt(s.now()),
	}

	if err := s.store.CreateAdmission(ctx, admission); err != nil {
		return nil, err
	}

	log.Debugf("admission %d stored for class %s", admission.ID, admission.AppliedClass)
	return admission, nil
}

func clean(t model.Text) model.Text {
	return model.Text(validation.SanitizeString(string(t)))
}

func missingFieldsError(err error) error {
	fields := validation.MissingFields(err)
	if len(fields) == 0 {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(fields, ", "))
}
