// file: internals/features/employees/leaves/dto/employee_leave_dto.go
package dto

import (
	"github.com/google/uuid"
)

type CreateEmployeeLeaveRequest struct {
	EmployeeID uuid.UUID `json:"employee_leave_employee_id" validate:"required"`
	Type       string    `json:"employee_leave_type" validate:"required,max=20"`
	StartDate  string    `json:"employee_leave_start_date" validate:"required"`
	EndDate    string    `json:"employee_leave_end_date" validate:"required"`
	Reason     string    `json:"employee_leave_reason" validate:"required"`
}

type TransitionEmployeeLeaveRequest struct {
	Status  string  `json:"employee_leave_status" validate:"required"`
	Comment *string `json:"comment" validate:"omitempty"`
}
