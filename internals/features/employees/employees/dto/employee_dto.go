// file: internals/features/employees/employees/dto/employee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/employees/employees/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

type CreateDepartmentRequest struct {
	Name string `json:"department_name" validate:"required,max=80"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"department_name" validate:"required,max=80"`
}

type EmployeeCredentialRequest struct {
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type EmployeeSalaryRequest struct {
	Basic         float64 `json:"employee_salary_basic" validate:"required,min=0"`
	Allowances    float64 `json:"employee_salary_allowances" validate:"omitempty,min=0"`
	Deductions    float64 `json:"employee_salary_deductions" validate:"omitempty,min=0"`
	EffectiveFrom string  `json:"employee_salary_effective_from" validate:"required"`
}

func (r *EmployeeSalaryRequest) ToModel(employeeID uuid.UUID) (*model.EmployeeSalaryModel, error) {
	from, err := dbtime.ParseDay(r.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	return &model.EmployeeSalaryModel{
		EmployeeSalaryEmployeeID:    employeeID,
		EmployeeSalaryBasic:         r.Basic,
		EmployeeSalaryAllowances:    r.Allowances,
		EmployeeSalaryDeductions:    r.Deductions,
		EmployeeSalaryEffectiveFrom: datatypes.Date(from),
	}, nil
}

type EmployeeDocumentRequest struct {
	Name    string `json:"employee_document_name" validate:"required,max=160"`
	FileURL string `json:"employee_document_file_url" validate:"required"`
}

type CreateEmployeeRequest struct {
	FirstName    string     `json:"employee_first_name" validate:"required,max=60"`
	LastName     string     `json:"employee_last_name" validate:"required,max=60"`
	Gender       string     `json:"employee_gender" validate:"required,max=10"`
	DOB          *string    `json:"employee_dob" validate:"omitempty"`
	Email        string     `json:"employee_email" validate:"required,email,max=120"`
	Phone        *string    `json:"employee_phone" validate:"omitempty,max=20"`
	DepartmentID uuid.UUID  `json:"employee_department_id" validate:"required"`
	Role         string     `json:"employee_role" validate:"required"`
	JoiningDate  *string    `json:"employee_joining_date" validate:"omitempty"`

	Credential *EmployeeCredentialRequest `json:"credential" validate:"omitempty"`
	Salary     *EmployeeSalaryRequest     `json:"employee_salary" validate:"omitempty"`
	Documents  []EmployeeDocumentRequest  `json:"employee_documents" validate:"omitempty,dive"`
}

func (r *CreateEmployeeRequest) ToModel() (*model.EmployeeModel, error) {
	m := &model.EmployeeModel{
		EmployeeFirstName:    strings.TrimSpace(r.FirstName),
		EmployeeLastName:     strings.TrimSpace(r.LastName),
		EmployeeGender:       strings.ToLower(strings.TrimSpace(r.Gender)),
		EmployeeEmail:        strings.ToLower(strings.TrimSpace(r.Email)),
		EmployeePhone:        r.Phone,
		EmployeeDepartmentID: r.DepartmentID,
		EmployeeRole:         strings.ToLower(strings.TrimSpace(r.Role)),
		EmployeeStatus:       model.EmployeeStatusActive,
	}
	if r.DOB != nil {
		d, err := dbtime.ParseDay(*r.DOB)
		if err != nil {
			return nil, err
		}
		dd := datatypes.Date(d)
		m.EmployeeDOB = &dd
	}
	if r.JoiningDate != nil {
		d, err := dbtime.ParseDay(*r.JoiningDate)
		if err != nil {
			return nil, err
		}
		dd := datatypes.Date(d)
		m.EmployeeJoiningDate = &dd
	}
	return m, nil
}

type UpdateEmployeeRequest struct {
	FirstName    *string    `json:"employee_first_name" validate:"omitempty,max=60"`
	LastName     *string    `json:"employee_last_name" validate:"omitempty,max=60"`
	Gender       *string    `json:"employee_gender" validate:"omitempty,max=10"`
	DOB          *string    `json:"employee_dob" validate:"omitempty"`
	Phone        *string    `json:"employee_phone" validate:"omitempty,max=20"`
	DepartmentID *uuid.UUID `json:"employee_department_id" validate:"omitempty"`
	Role         *string    `json:"employee_role" validate:"omitempty"`
	Status       *string    `json:"employee_status" validate:"omitempty"`
}

func (r *UpdateEmployeeRequest) ApplyTo(m *model.EmployeeModel) error {
	if r.FirstName != nil {
		m.EmployeeFirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.EmployeeLastName = *r.LastName
	}
	if r.Gender != nil {
		m.EmployeeGender = strings.ToLower(*r.Gender)
	}
	if r.DOB != nil {
		d, err := dbtime.ParseDay(*r.DOB)
		if err != nil {
			return err
		}
		dd := datatypes.Date(d)
		m.EmployeeDOB = &dd
	}
	if r.Phone != nil {
		m.EmployeePhone = r.Phone
	}
	if r.DepartmentID != nil {
		m.EmployeeDepartmentID = *r.DepartmentID
	}
	if r.Role != nil {
		m.EmployeeRole = strings.ToLower(*r.Role)
	}
	if r.Status != nil {
		m.EmployeeStatus = *r.Status
	}
	m.EmployeeUpdatedAt = time.Now()
	return nil
}
