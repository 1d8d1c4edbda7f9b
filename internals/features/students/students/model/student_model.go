// file: internals/features/students/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status siswa
const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
	StudentStatusAlumni   = "alumni"
)

func IsValidStudentStatus(s string) bool {
	switch s {
	case StudentStatusActive, StudentStatusInactive, StudentStatusAlumni:
		return true
	}
	return false
}

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentFirstName string          `gorm:"type:varchar(60);not null;column:student_first_name" json:"student_first_name"`
	StudentLastName  string          `gorm:"type:varchar(60);not null;column:student_last_name" json:"student_last_name"`
	StudentGender    string          `gorm:"type:varchar(10);not null;column:student_gender" json:"student_gender"`
	StudentDOB       *datatypes.Date `gorm:"column:student_dob" json:"student_dob,omitempty"`
	StudentEmail     *string         `gorm:"type:varchar(120);column:student_email" json:"student_email,omitempty"`
	StudentPhone     *string         `gorm:"type:varchar(20);column:student_phone" json:"student_phone,omitempty"`
	StudentPhotoURL  *string         `gorm:"type:text;column:student_photo_url" json:"student_photo_url,omitempty"`

	StudentStatus string `gorm:"type:varchar(10);not null;default:'active';column:student_status" json:"student_status"`

	// Kredensial login (opsional, one-to-one)
	StudentUserID *uuid.UUID `gorm:"type:uuid;column:student_user_id;uniqueIndex:uq_students_user" json:"student_user_id,omitempty"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`

	// Anak-anak (semua ikut terhapus bersama siswa)
	StudentDetail           *StudentDetailModel           `gorm:"foreignKey:StudentDetailStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student_detail,omitempty"`
	StudentFamilyDetail     *StudentFamilyDetailModel     `gorm:"foreignKey:StudentFamilyDetailStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student_family_detail,omitempty"`
	StudentPreviousAcademic *StudentPreviousAcademicModel `gorm:"foreignKey:StudentPreviousAcademicStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student_previous_academic,omitempty"`
	StudentPaymentDetail    *StudentPaymentDetailModel    `gorm:"foreignKey:StudentPaymentDetailStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student_payment_detail,omitempty"`
	StudentHostelDetail     *StudentHostelDetailModel     `gorm:"foreignKey:StudentHostelDetailStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student_hostel_detail,omitempty"`
	StudentFacility         *StudentFacilityModel         `gorm:"foreignKey:StudentFacilityStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student_facility,omitempty"`
	StudentAddresses        []StudentAddressModel         `gorm:"foreignKey:StudentAddressStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student_addresses,omitempty"`
	StudentDocuments        []StudentDocumentModel        `gorm:"foreignKey:StudentDocumentStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student_documents,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
