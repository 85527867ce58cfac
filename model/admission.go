package model

// Admission represents a student application submitted to the school
type Admission struct {
	ID                int64        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentName       string       `gorm:"column:studentName;not null" json:"studentName"`
	DateOfBirth       string       `gorm:"column:dob;not null" json:"dob"`
	Gender            string       `gorm:"column:gender;not null" json:"gender"`
	AppliedClass      string       `gorm:"column:class;not null" json:"class"`
	FatherName        string       `gorm:"column:fatherName;not null" json:"fatherName"`
	MotherName        string       `gorm:"column:motherName;not null" json:"motherName"`
	Phone             string       `gorm:"column:phone;not null" json:"phone"`
	Email             OptionalText `gorm:"column:email" json:"email"`
	Address           string       `gorm:"column:address;not null" json:"address"`
	PreviousSchool    OptionalText `gorm:"column:previousSchool" json:"previousSchool"`
	LastClassAttended OptionalText `gorm:"column:lastClass" json:"lastClass"`
	CreatedAt         string       `gorm:"column:createdAt;not null" json:"createdAt"` // ISO-8601, UTC, millisecond precision
}

// TableName specifies the table name for Admission
func (Admission) TableName() string {
	return "admissions"
}
