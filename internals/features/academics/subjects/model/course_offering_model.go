// file: internals/features/academics/subjects/model/course_offering_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseOffering = join Class × Subject (+ guru opsional). Kombinasi
// (class, subject) dijaga unik oleh constraint, bukan pre-check.
type CourseOfferingModel struct {
	CourseOfferingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_offering_id" json:"course_offering_id"`

	CourseOfferingClassID   uuid.UUID `gorm:"type:uuid;not null;column:course_offering_class_id;uniqueIndex:uq_course_offerings_class_subject,priority:1;index:idx_course_offerings_class" json:"course_offering_class_id"`
	CourseOfferingSubjectID uuid.UUID `gorm:"type:uuid;not null;column:course_offering_subject_id;uniqueIndex:uq_course_offerings_class_subject,priority:2;index:idx_course_offerings_subject" json:"course_offering_subject_id"`

	CourseOfferingTeacherID   *uuid.UUID `gorm:"type:uuid;column:course_offering_teacher_id" json:"course_offering_teacher_id,omitempty"`
	CourseOfferingIsMandatory bool       `gorm:"not null;default:true;column:course_offering_is_mandatory" json:"course_offering_is_mandatory"`

	CourseOfferingCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:course_offering_created_at" json:"course_offering_created_at"`
	CourseOfferingUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:course_offering_updated_at" json:"course_offering_updated_at"`
	CourseOfferingDeletedAt gorm.DeletedAt `gorm:"column:course_offering_deleted_at;index" json:"course_offering_deleted_at,omitempty"`
}

func (CourseOfferingModel) TableName() string { return "course_offerings" }

type CourseMaterialModel struct {
	CourseMaterialID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_material_id" json:"course_material_id"`

	CourseMaterialOfferingID uuid.UUID `gorm:"type:uuid;not null;column:course_material_offering_id;index:idx_course_materials_offering" json:"course_material_offering_id"`

	CourseMaterialName    string `gorm:"type:varchar(160);not null;column:course_material_name" json:"course_material_name"`
	CourseMaterialFileURL string `gorm:"type:text;not null;column:course_material_file_url" json:"course_material_file_url"`

	CourseMaterialCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:course_material_created_at" json:"course_material_created_at"`
}

func (CourseMaterialModel) TableName() string { return "course_materials" }
