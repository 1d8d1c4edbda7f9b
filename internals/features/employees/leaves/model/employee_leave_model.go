// file: internals/features/employees/leaves/model/employee_leave_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status cuti: pending → approved | rejected (satu arah).
// "cancelled" hanya lewat jalur pembatalan pemohon, sebelum tanggal mulai.
const (
	LeaveStatusPending   = "pending"
	LeaveStatusApproved  = "approved"
	LeaveStatusRejected  = "rejected"
	LeaveStatusCancelled = "cancelled"
)

type EmployeeLeaveModel struct {
	EmployeeLeaveID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_leave_id" json:"employee_leave_id"`

	EmployeeLeaveEmployeeID uuid.UUID `gorm:"type:uuid;not null;column:employee_leave_employee_id;index:idx_employee_leaves_employee" json:"employee_leave_employee_id"`

	EmployeeLeaveType      string         `gorm:"type:varchar(20);not null;column:employee_leave_type" json:"employee_leave_type"`
	EmployeeLeaveStartDate datatypes.Date `gorm:"not null;column:employee_leave_start_date" json:"employee_leave_start_date"`
	EmployeeLeaveEndDate   datatypes.Date `gorm:"not null;column:employee_leave_end_date" json:"employee_leave_end_date"`
	EmployeeLeaveReason    string         `gorm:"type:text;not null;column:employee_leave_reason" json:"employee_leave_reason"`
	EmployeeLeaveStatus    string         `gorm:"type:varchar(10);not null;default:'pending';column:employee_leave_status" json:"employee_leave_status"`

	EmployeeLeaveCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:employee_leave_created_at" json:"employee_leave_created_at"`
	EmployeeLeaveUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:employee_leave_updated_at" json:"employee_leave_updated_at"`
	EmployeeLeaveDeletedAt gorm.DeletedAt `gorm:"column:employee_leave_deleted_at;index" json:"employee_leave_deleted_at,omitempty"`

	EmployeeLeaveHistories []LeaveStatusHistoryModel `gorm:"foreignKey:LeaveStatusHistoryLeaveID;references:EmployeeLeaveID;constraint:OnDelete:CASCADE" json:"employee_leave_histories,omitempty"`
}

func (EmployeeLeaveModel) TableName() string { return "employee_leaves" }

// Audit trail — append only.
type LeaveStatusHistoryModel struct {
	LeaveStatusHistoryID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:leave_status_history_id" json:"leave_status_history_id"`
	LeaveStatusHistoryLeaveID uuid.UUID `gorm:"type:uuid;not null;column:leave_status_history_leave_id;index:idx_leave_status_histories_leave" json:"leave_status_history_leave_id"`

	LeaveStatusHistoryStatus  string  `gorm:"type:varchar(10);not null;column:leave_status_history_status" json:"leave_status_history_status"`
	LeaveStatusHistoryComment *string `gorm:"type:text;column:leave_status_history_comment" json:"leave_status_history_comment,omitempty"`

	LeaveStatusHistoryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:leave_status_history_created_at" json:"leave_status_history_created_at"`
}

func (LeaveStatusHistoryModel) TableName() string { return "leave_status_histories" }
