// file: internals/features/academics/academic_years/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AcademicYearModel struct {
	AcademicYearID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`
	AcademicYearName string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_academic_years_name;column:academic_year_name" json:"academic_year_name"`

	AcademicYearStartDate datatypes.Date `gorm:"not null;column:academic_year_start_date" json:"academic_year_start_date"`
	AcademicYearEndDate   datatypes.Date `gorm:"not null;column:academic_year_end_date" json:"academic_year_end_date"`

	// Maksimal satu tahun aktif — di-enforce transaksional saat SetActive.
	AcademicYearIsActive bool `gorm:"not null;default:false;column:academic_year_is_active" json:"academic_year_is_active"`

	AcademicYearCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:academic_year_created_at" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:academic_year_updated_at" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
