// file: internals/features/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medium pengantar
const (
	MediumEnglish  = "english"
	MediumHindi    = "hindi"
	MediumGujarati = "gujarati"
)

func IsValidMedium(m string) bool {
	switch m {
	case MediumEnglish, MediumHindi, MediumGujarati:
		return true
	}
	return false
}

type ClassModel struct {
	ClassID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassName string    `gorm:"type:varchar(80);not null;column:class_name" json:"class_name"`

	ClassAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:class_academic_year_id;uniqueIndex:uq_classes_year_std_sec_medium,priority:1;index:idx_classes_year" json:"class_academic_year_id"`
	ClassStandard       string    `gorm:"type:varchar(10);not null;column:class_standard;uniqueIndex:uq_classes_year_std_sec_medium,priority:2" json:"class_standard"`
	ClassSection        string    `gorm:"type:varchar(5);not null;column:class_section;uniqueIndex:uq_classes_year_std_sec_medium,priority:3" json:"class_section"`
	ClassMedium         string    `gorm:"type:varchar(10);not null;column:class_medium;uniqueIndex:uq_classes_year_std_sec_medium,priority:4" json:"class_medium"`

	ClassCapacity int `gorm:"not null;column:class_capacity" json:"class_capacity"`

	// Wali kelas (opsional)
	ClassTeacherID *uuid.UUID `gorm:"type:uuid;column:class_teacher_id" json:"class_teacher_id,omitempty"`

	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
