// file: internals/features/students/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status enrollment
const (
	EnrollmentStatusEnrolled  = "enrolled"
	EnrollmentStatusWithdrawn = "withdrawn"
	EnrollmentStatusCompleted = "completed"
)

// Duplikat (student, offering) ditolak oleh constraint; insert massal memakai
// ON CONFLICT DO NOTHING.
type StudentCourseEnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`

	EnrollmentStudentID        uuid.UUID `gorm:"type:uuid;not null;column:enrollment_student_id;uniqueIndex:uq_enrollments_student_offering,priority:1;index:idx_enrollments_student" json:"enrollment_student_id"`
	EnrollmentCourseOfferingID uuid.UUID `gorm:"type:uuid;not null;column:enrollment_course_offering_id;uniqueIndex:uq_enrollments_student_offering,priority:2;index:idx_enrollments_offering" json:"enrollment_course_offering_id"`

	EnrollmentStatus     string  `gorm:"type:varchar(10);not null;default:'enrolled';column:enrollment_status" json:"enrollment_status"`
	EnrollmentFinalGrade *string `gorm:"type:varchar(5);column:enrollment_final_grade" json:"enrollment_final_grade,omitempty"`

	EnrollmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:enrollment_created_at" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:enrollment_updated_at" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (StudentCourseEnrollmentModel) TableName() string { return "student_course_enrollments" }
