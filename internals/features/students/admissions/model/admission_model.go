// file: internals/features/students/admissions/model/admission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Admission menghubungkan siswa ke kelas untuk satu tahun ajaran.
// Invariant satu-admission-per-tahun dicek di engine (bukan constraint),
// karena tahun ajaran hidup di tabel classes.
type AdmissionModel struct {
	AdmissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admission_id" json:"admission_id"`

	AdmissionStudentID uuid.UUID `gorm:"type:uuid;not null;column:admission_student_id;index:idx_admissions_student" json:"admission_student_id"`
	AdmissionClassID   uuid.UUID `gorm:"type:uuid;not null;column:admission_class_id;index:idx_admissions_class" json:"admission_class_id"`

	AdmissionNumber   string `gorm:"type:varchar(40);not null;uniqueIndex:uq_admissions_number;column:admission_number" json:"admission_number"`
	AdmissionGRNumber string `gorm:"type:varchar(40);not null;uniqueIndex:uq_admissions_gr_number;column:admission_gr_number" json:"admission_gr_number"`

	AdmissionRollNumber *int           `gorm:"column:admission_roll_number" json:"admission_roll_number,omitempty"`
	AdmissionDate       datatypes.Date `gorm:"not null;column:admission_date" json:"admission_date"`

	AdmissionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:admission_created_at" json:"admission_created_at"`
	AdmissionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:admission_updated_at" json:"admission_updated_at"`
	AdmissionDeletedAt gorm.DeletedAt `gorm:"column:admission_deleted_at;index" json:"admission_deleted_at,omitempty"`
}

func (AdmissionModel) TableName() string { return "admissions" }
