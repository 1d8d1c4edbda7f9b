// file: internals/features/students/attendance/dto/student_attendance_dto.go
package dto

import (
	"github.com/google/uuid"
)

type UpsertAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_attendance_student_id" validate:"required"`
	Date      string    `json:"student_attendance_date" validate:"required"`
	Status    string    `json:"student_attendance_status" validate:"required"`
	Remarks   *string   `json:"student_attendance_remarks" validate:"omitempty"`
}

type BatchAttendanceEntry struct {
	StudentID uuid.UUID `json:"student_attendance_student_id" validate:"required"`
	Status    string    `json:"student_attendance_status" validate:"required"`
	Remarks   *string   `json:"student_attendance_remarks" validate:"omitempty"`
}

// Satu tanggal, banyak siswa — dipakai guru kelas pagi hari.
type BatchAttendanceRequest struct {
	Date    string                 `json:"student_attendance_date" validate:"required"`
	Entries []BatchAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// Satu siswa, rentang tanggal inklusif — satu baris per hari kalender.
type RangeAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_attendance_student_id" validate:"required"`
	StartDate string    `json:"start_date" validate:"required"`
	EndDate   string    `json:"end_date" validate:"required"`
	Status    string    `json:"student_attendance_status" validate:"required"`
	Remarks   *string   `json:"student_attendance_remarks" validate:"omitempty"`
}

type CreateStudentLeaveRequest struct {
	StudentID uuid.UUID `json:"student_leave_student_id" validate:"required"`
	Type      string    `json:"student_leave_type" validate:"required,max=20"`
	StartDate string    `json:"student_leave_start_date" validate:"required"`
	EndDate   string    `json:"student_leave_end_date" validate:"required"`
	Reason    string    `json:"student_leave_reason" validate:"required"`
}

type TransitionStudentLeaveRequest struct {
	Status  string  `json:"student_leave_status" validate:"required"`
	Comment *string `json:"comment" validate:"omitempty"`
}
