// file: internals/features/employees/attendance/model/employee_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Satu baris per (pegawai, tanggal); status & source memakai konstanta yang
// sama dengan attendance siswa.
type EmployeeAttendanceModel struct {
	EmployeeAttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_attendance_id" json:"employee_attendance_id"`

	EmployeeAttendanceEmployeeID uuid.UUID      `gorm:"type:uuid;not null;column:employee_attendance_employee_id;uniqueIndex:uq_employee_attendances_employee_date,priority:1" json:"employee_attendance_employee_id"`
	EmployeeAttendanceDate       datatypes.Date `gorm:"not null;column:employee_attendance_date;uniqueIndex:uq_employee_attendances_employee_date,priority:2" json:"employee_attendance_date"`

	EmployeeAttendanceStatus   string  `gorm:"type:varchar(10);not null;column:employee_attendance_status" json:"employee_attendance_status"`
	EmployeeAttendanceCheckIn  *string `gorm:"type:varchar(5);column:employee_attendance_check_in" json:"employee_attendance_check_in,omitempty"`  // "HH:MM"
	EmployeeAttendanceCheckOut *string `gorm:"type:varchar(5);column:employee_attendance_check_out" json:"employee_attendance_check_out,omitempty"`
	EmployeeAttendanceRemarks  *string `gorm:"type:text;column:employee_attendance_remarks" json:"employee_attendance_remarks,omitempty"`
	EmployeeAttendanceSource   string  `gorm:"type:varchar(12);not null;default:'manual';column:employee_attendance_source" json:"employee_attendance_source"`

	EmployeeAttendanceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:employee_attendance_created_at" json:"employee_attendance_created_at"`
	EmployeeAttendanceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:employee_attendance_updated_at" json:"employee_attendance_updated_at"`
}

func (EmployeeAttendanceModel) TableName() string { return "employee_attendances" }
