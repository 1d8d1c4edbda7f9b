// file: internals/features/employees/attendance/dto/employee_attendance_dto.go
package dto

import (
	"github.com/google/uuid"
)

type UpsertEmployeeAttendanceRequest struct {
	EmployeeID uuid.UUID `json:"employee_attendance_employee_id" validate:"required"`
	Date       string    `json:"employee_attendance_date" validate:"required"`
	Status     string    `json:"employee_attendance_status" validate:"required"`
	CheckIn    *string   `json:"employee_attendance_check_in" validate:"omitempty,len=5"`  // "HH:MM"
	CheckOut   *string   `json:"employee_attendance_check_out" validate:"omitempty,len=5"`
	Remarks    *string   `json:"employee_attendance_remarks" validate:"omitempty"`
}

type BatchEmployeeAttendanceEntry struct {
	EmployeeID uuid.UUID `json:"employee_attendance_employee_id" validate:"required"`
	Status     string    `json:"employee_attendance_status" validate:"required"`
	CheckIn    *string   `json:"employee_attendance_check_in" validate:"omitempty,len=5"`
	CheckOut   *string   `json:"employee_attendance_check_out" validate:"omitempty,len=5"`
	Remarks    *string   `json:"employee_attendance_remarks" validate:"omitempty"`
}

type BatchEmployeeAttendanceRequest struct {
	Date    string                         `json:"employee_attendance_date" validate:"required"`
	Entries []BatchEmployeeAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}
