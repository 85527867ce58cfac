package model

import "time"

// CreatedAtLayout is the ISO-8601 layout used for createdAt columns
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// Fee represents a single fee payment.
// StudentID is free text and is not checked against admissions.
type Fee struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID     string  `gorm:"column:studentId;not null" json:"studentId"`
	StudentName   string  `gorm:"column:studentName;not null" json:"studentName"`
	AppliedClass  string  `gorm:"column:class;not null" json:"class"`
	Amount        float64 `gorm:"column:amount;not null" json:"amount"`
	PaymentMethod string  `gorm:"column:paymentMethod;not null" json:"paymentMethod"`
	CreatedAt     string  `gorm:"column:createdAt;not null" json:"createdAt"`
}

// TableName specifies the table name for Fee
func (Fee) TableName() string {
	return "fees"
}

// FormatCreatedAt renders t in UTC using CreatedAtLayout
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}
