// file: internals/features/students/attendance/model/student_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status kehadiran (dipakai juga oleh attendance pegawai)
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusHalfDay = "half_day"
	AttendanceStatusOnLeave = "on_leave"
)

// Sumber pencatatan
const (
	AttendanceSourceManual     = "manual"
	AttendanceSourceManualBulk = "manual_bulk"
	AttendanceSourceBiometric  = "biometric"
)

func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate,
		AttendanceStatusHalfDay, AttendanceStatusOnLeave:
		return true
	}
	return false
}

// Satu baris per (siswa, tanggal) — key unik compound; tanggal selalu
// hari kanonik UTC (lihat helpers/dbtime).
type StudentAttendanceModel struct {
	StudentAttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_attendance_id" json:"student_attendance_id"`

	StudentAttendanceStudentID uuid.UUID      `gorm:"type:uuid;not null;column:student_attendance_student_id;uniqueIndex:uq_student_attendances_student_date,priority:1" json:"student_attendance_student_id"`
	StudentAttendanceDate      datatypes.Date `gorm:"not null;column:student_attendance_date;uniqueIndex:uq_student_attendances_student_date,priority:2" json:"student_attendance_date"`

	StudentAttendanceStatus  string  `gorm:"type:varchar(10);not null;column:student_attendance_status" json:"student_attendance_status"`
	StudentAttendanceRemarks *string `gorm:"type:text;column:student_attendance_remarks" json:"student_attendance_remarks,omitempty"`
	StudentAttendanceSource  string  `gorm:"type:varchar(12);not null;default:'manual';column:student_attendance_source" json:"student_attendance_source"`

	StudentAttendanceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_attendance_created_at" json:"student_attendance_created_at"`
	StudentAttendanceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_attendance_updated_at" json:"student_attendance_updated_at"`
}

func (StudentAttendanceModel) TableName() string { return "student_attendances" }

type StudentLeaveModel struct {
	StudentLeaveID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_leave_id" json:"student_leave_id"`

	StudentLeaveStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_leave_student_id;index:idx_student_leaves_student" json:"student_leave_student_id"`

	StudentLeaveType      string         `gorm:"type:varchar(20);not null;column:student_leave_type" json:"student_leave_type"`
	StudentLeaveStartDate datatypes.Date `gorm:"not null;column:student_leave_start_date" json:"student_leave_start_date"`
	StudentLeaveEndDate   datatypes.Date `gorm:"not null;column:student_leave_end_date" json:"student_leave_end_date"`
	StudentLeaveReason    string         `gorm:"type:text;not null;column:student_leave_reason" json:"student_leave_reason"`
	StudentLeaveStatus    string         `gorm:"type:varchar(10);not null;default:'pending';column:student_leave_status" json:"student_leave_status"`

	StudentLeaveCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_leave_created_at" json:"student_leave_created_at"`
	StudentLeaveUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_leave_updated_at" json:"student_leave_updated_at"`
	StudentLeaveDeletedAt gorm.DeletedAt `gorm:"column:student_leave_deleted_at;index" json:"student_leave_deleted_at,omitempty"`

	StudentLeaveHistories []StudentLeaveStatusHistoryModel `gorm:"foreignKey:StudentLeaveStatusHistoryLeaveID;references:StudentLeaveID;constraint:OnDelete:CASCADE" json:"student_leave_histories,omitempty"`
}

func (StudentLeaveModel) TableName() string { return "student_leaves" }

// Audit trail — append only, tidak pernah diubah/dihapus.
type StudentLeaveStatusHistoryModel struct {
	StudentLeaveStatusHistoryID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_leave_status_history_id" json:"student_leave_status_history_id"`
	StudentLeaveStatusHistoryLeaveID uuid.UUID `gorm:"type:uuid;not null;column:student_leave_status_history_leave_id;index:idx_student_leave_histories_leave" json:"student_leave_status_history_leave_id"`

	StudentLeaveStatusHistoryStatus  string  `gorm:"type:varchar(10);not null;column:student_leave_status_history_status" json:"student_leave_status_history_status"`
	StudentLeaveStatusHistoryComment *string `gorm:"type:text;column:student_leave_status_history_comment" json:"student_leave_status_history_comment,omitempty"`

	StudentLeaveStatusHistoryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_leave_status_history_created_at" json:"student_leave_status_history_created_at"`
}

func (StudentLeaveStatusHistoryModel) TableName() string { return "student_leave_status_histories" }
