// file: internals/features/academics/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	Name           string     `json:"class_name" validate:"required,max=80"`
	AcademicYearID uuid.UUID  `json:"class_academic_year_id" validate:"required"`
	Standard       string     `json:"class_standard" validate:"required,max=10"`
	Section        string     `json:"class_section" validate:"required,max=5"`
	Medium         string     `json:"class_medium" validate:"required"`
	Capacity       int        `json:"class_capacity" validate:"required,gt=0"`
	TeacherID      *uuid.UUID `json:"class_teacher_id" validate:"omitempty"`
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName:           r.Name,
		ClassAcademicYearID: r.AcademicYearID,
		ClassStandard:       r.Standard,
		ClassSection:        r.Section,
		ClassMedium:         r.Medium,
		ClassCapacity:       r.Capacity,
		ClassTeacherID:      r.TeacherID,
	}
}

type UpdateClassRequest struct {
	Name      *string    `json:"class_name" validate:"omitempty,max=80"`
	Capacity  *int       `json:"class_capacity" validate:"omitempty,gt=0"`
	Medium    *string    `json:"class_medium" validate:"omitempty"`
	TeacherID *uuid.UUID `json:"class_teacher_id" validate:"omitempty"`
}

func (r *UpdateClassRequest) ApplyTo(m *model.ClassModel) {
	if r.Name != nil {
		m.ClassName = *r.Name
	}
	if r.Capacity != nil {
		m.ClassCapacity = *r.Capacity
	}
	if r.Medium != nil {
		m.ClassMedium = *r.Medium
	}
	if r.TeacherID != nil {
		m.ClassTeacherID = r.TeacherID
	}
	m.ClassUpdatedAt = time.Now()
}
