// file: internals/features/students/admissions/dto/admission_dto.go
package dto

import (
	"github.com/google/uuid"
)

type AdmitStudentsRequest struct {
	ClassID    uuid.UUID   `json:"class_id" validate:"required"`
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
}

// Kelas asal tidak dikirim klien — diturunkan per siswa dari admission
// terbarunya, jadi satu batch boleh datang dari beberapa kelas sekaligus.
type PromoteStudentsRequest struct {
	ToClassID  uuid.UUID   `json:"to_class_id" validate:"required"`
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
}

type UpdateRollNumberRequest struct {
	RollNumber *int `json:"admission_roll_number" validate:"omitempty,min=1"`
}
