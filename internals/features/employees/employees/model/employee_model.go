// file: internals/features/employees/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role pegawai
const (
	EmployeeRoleTeacher   = "teacher"
	EmployeeRoleAdmin     = "admin"
	EmployeeRoleLibrarian = "librarian"
	EmployeeRoleStaff     = "staff"
)

// Status pegawai
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusResigned = "resigned"
	EmployeeStatusInactive = "inactive"
)

func IsValidEmployeeRole(r string) bool {
	switch r {
	case EmployeeRoleTeacher, EmployeeRoleAdmin, EmployeeRoleLibrarian, EmployeeRoleStaff:
		return true
	}
	return false
}

func IsValidEmployeeStatus(s string) bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusResigned, EmployeeStatusInactive:
		return true
	}
	return false
}

type DepartmentModel struct {
	DepartmentID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`
	DepartmentName string    `gorm:"type:varchar(80);not null;uniqueIndex:uq_departments_name;column:department_name" json:"department_name"`

	DepartmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:department_created_at" json:"department_created_at"`
	DepartmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:department_updated_at" json:"department_updated_at"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }

type EmployeeModel struct {
	EmployeeID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_id" json:"employee_id"`
	EmployeeCode string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_employees_code;column:employee_code" json:"employee_code"`

	EmployeeFirstName string          `gorm:"type:varchar(60);not null;column:employee_first_name" json:"employee_first_name"`
	EmployeeLastName  string          `gorm:"type:varchar(60);not null;column:employee_last_name" json:"employee_last_name"`
	EmployeeGender    string          `gorm:"type:varchar(10);not null;column:employee_gender" json:"employee_gender"`
	EmployeeDOB       *datatypes.Date `gorm:"column:employee_dob" json:"employee_dob,omitempty"`
	EmployeeEmail     string          `gorm:"type:varchar(120);not null;uniqueIndex:uq_employees_email;column:employee_email" json:"employee_email"`
	EmployeePhone     *string         `gorm:"type:varchar(20);column:employee_phone" json:"employee_phone,omitempty"`

	EmployeeDepartmentID uuid.UUID `gorm:"type:uuid;not null;column:employee_department_id;index:idx_employees_department" json:"employee_department_id"`
	EmployeeRole         string    `gorm:"type:varchar(20);not null;column:employee_role" json:"employee_role"`
	EmployeeStatus       string    `gorm:"type:varchar(10);not null;default:'active';column:employee_status" json:"employee_status"`
	EmployeeJoiningDate  *datatypes.Date `gorm:"column:employee_joining_date" json:"employee_joining_date,omitempty"`

	// Kredensial login (opsional, one-to-one)
	EmployeeUserID *uuid.UUID `gorm:"type:uuid;column:employee_user_id;uniqueIndex:uq_employees_user" json:"employee_user_id,omitempty"`

	EmployeeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:employee_created_at" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:employee_updated_at" json:"employee_updated_at"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;index" json:"employee_deleted_at,omitempty"`

	EmployeeSalaries  []EmployeeSalaryModel   `gorm:"foreignKey:EmployeeSalaryEmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"employee_salaries,omitempty"`
	EmployeeDocuments []EmployeeDocumentModel `gorm:"foreignKey:EmployeeDocumentEmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"employee_documents,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }

// Riwayat gaji: append baru atau update yang terakhir.
type EmployeeSalaryModel struct {
	EmployeeSalaryID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_salary_id" json:"employee_salary_id"`
	EmployeeSalaryEmployeeID uuid.UUID `gorm:"type:uuid;not null;column:employee_salary_employee_id;index:idx_employee_salaries_employee" json:"employee_salary_employee_id"`

	EmployeeSalaryBasic      float64 `gorm:"type:numeric(12,2);not null;column:employee_salary_basic" json:"employee_salary_basic"`
	EmployeeSalaryAllowances float64 `gorm:"type:numeric(12,2);not null;default:0;column:employee_salary_allowances" json:"employee_salary_allowances"`
	EmployeeSalaryDeductions float64 `gorm:"type:numeric(12,2);not null;default:0;column:employee_salary_deductions" json:"employee_salary_deductions"`

	EmployeeSalaryEffectiveFrom datatypes.Date `gorm:"not null;column:employee_salary_effective_from" json:"employee_salary_effective_from"`

	EmployeeSalaryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:employee_salary_created_at" json:"employee_salary_created_at"`
	EmployeeSalaryUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:employee_salary_updated_at" json:"employee_salary_updated_at"`
}

func (EmployeeSalaryModel) TableName() string { return "employee_salaries" }

// Dokumen: append only.
type EmployeeDocumentModel struct {
	EmployeeDocumentID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_document_id" json:"employee_document_id"`
	EmployeeDocumentEmployeeID uuid.UUID `gorm:"type:uuid;not null;column:employee_document_employee_id;index:idx_employee_documents_employee" json:"employee_document_employee_id"`

	EmployeeDocumentName    string `gorm:"type:varchar(160);not null;column:employee_document_name" json:"employee_document_name"`
	EmployeeDocumentFileURL string `gorm:"type:text;not null;column:employee_document_file_url" json:"employee_document_file_url"`

	EmployeeDocumentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:employee_document_created_at" json:"employee_document_created_at"`
}

func (EmployeeDocumentModel) TableName() string { return "employee_documents" }
