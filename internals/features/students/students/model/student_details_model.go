// file: internals/features/students/students/model/student_details_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   Tabel detail one-to-one: dibuat lewat upsert dari parent,
   tidak pernah berdiri sendiri.
   ========================================================= */

type StudentDetailModel struct {
	StudentDetailID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_detail_id" json:"student_detail_id"`
	StudentDetailStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_detail_student_id;uniqueIndex:uq_student_details_student" json:"student_detail_student_id"`

	StudentDetailAadhaarNumber *string `gorm:"type:varchar(20);column:student_detail_aadhaar_number" json:"student_detail_aadhaar_number,omitempty"`
	StudentDetailBloodGroup    *string `gorm:"type:varchar(5);column:student_detail_blood_group" json:"student_detail_blood_group,omitempty"`
	StudentDetailNationality   *string `gorm:"type:varchar(40);column:student_detail_nationality" json:"student_detail_nationality,omitempty"`
	StudentDetailReligion      *string `gorm:"type:varchar(40);column:student_detail_religion" json:"student_detail_religion,omitempty"`
	StudentDetailCaste         *string `gorm:"type:varchar(40);column:student_detail_caste" json:"student_detail_caste,omitempty"`
	StudentDetailMotherTongue  *string `gorm:"type:varchar(40);column:student_detail_mother_tongue" json:"student_detail_mother_tongue,omitempty"`

	StudentDetailCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_detail_created_at" json:"student_detail_created_at"`
	StudentDetailUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_detail_updated_at" json:"student_detail_updated_at"`
}

func (StudentDetailModel) TableName() string { return "student_details" }

type StudentFamilyDetailModel struct {
	StudentFamilyDetailID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_family_detail_id" json:"student_family_detail_id"`
	StudentFamilyDetailStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_family_detail_student_id;uniqueIndex:uq_student_family_details_student" json:"student_family_detail_student_id"`

	StudentFamilyDetailFatherName       *string `gorm:"type:varchar(120);column:student_family_detail_father_name" json:"student_family_detail_father_name,omitempty"`
	StudentFamilyDetailFatherPhone      *string `gorm:"type:varchar(20);column:student_family_detail_father_phone" json:"student_family_detail_father_phone,omitempty"`
	StudentFamilyDetailFatherOccupation *string `gorm:"type:varchar(80);column:student_family_detail_father_occupation" json:"student_family_detail_father_occupation,omitempty"`
	StudentFamilyDetailMotherName       *string `gorm:"type:varchar(120);column:student_family_detail_mother_name" json:"student_family_detail_mother_name,omitempty"`
	StudentFamilyDetailMotherPhone      *string `gorm:"type:varchar(20);column:student_family_detail_mother_phone" json:"student_family_detail_mother_phone,omitempty"`
	StudentFamilyDetailGuardianName     *string `gorm:"type:varchar(120);column:student_family_detail_guardian_name" json:"student_family_detail_guardian_name,omitempty"`
	StudentFamilyDetailGuardianPhone    *string `gorm:"type:varchar(20);column:student_family_detail_guardian_phone" json:"student_family_detail_guardian_phone,omitempty"`

	StudentFamilyDetailCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_family_detail_created_at" json:"student_family_detail_created_at"`
	StudentFamilyDetailUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_family_detail_updated_at" json:"student_family_detail_updated_at"`
}

func (StudentFamilyDetailModel) TableName() string { return "student_family_details" }

type StudentPreviousAcademicModel struct {
	StudentPreviousAcademicID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_previous_academic_id" json:"student_previous_academic_id"`
	StudentPreviousAcademicStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_previous_academic_student_id;uniqueIndex:uq_student_previous_academics_student" json:"student_previous_academic_student_id"`

	StudentPreviousAcademicSchoolName   *string `gorm:"type:varchar(160);column:student_previous_academic_school_name" json:"student_previous_academic_school_name,omitempty"`
	StudentPreviousAcademicLastStandard *string `gorm:"type:varchar(10);column:student_previous_academic_last_standard" json:"student_previous_academic_last_standard,omitempty"`
	StudentPreviousAcademicPercentage   *float64 `gorm:"type:numeric(5,2);column:student_previous_academic_percentage" json:"student_previous_academic_percentage,omitempty"`
	StudentPreviousAcademicPassingYear  *int    `gorm:"column:student_previous_academic_passing_year" json:"student_previous_academic_passing_year,omitempty"`

	StudentPreviousAcademicCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_previous_academic_created_at" json:"student_previous_academic_created_at"`
	StudentPreviousAcademicUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_previous_academic_updated_at" json:"student_previous_academic_updated_at"`
}

func (StudentPreviousAcademicModel) TableName() string { return "student_previous_academics" }

type StudentPaymentDetailModel struct {
	StudentPaymentDetailID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_payment_detail_id" json:"student_payment_detail_id"`
	StudentPaymentDetailStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_payment_detail_student_id;uniqueIndex:uq_student_payment_details_student" json:"student_payment_detail_student_id"`

	StudentPaymentDetailBankName      *string `gorm:"type:varchar(120);column:student_payment_detail_bank_name" json:"student_payment_detail_bank_name,omitempty"`
	StudentPaymentDetailAccountNumber *string `gorm:"type:varchar(30);column:student_payment_detail_account_number" json:"student_payment_detail_account_number,omitempty"`
	StudentPaymentDetailIFSCCode      *string `gorm:"type:varchar(15);column:student_payment_detail_ifsc_code" json:"student_payment_detail_ifsc_code,omitempty"`
	StudentPaymentDetailFeeCategory   *string `gorm:"type:varchar(40);column:student_payment_detail_fee_category" json:"student_payment_detail_fee_category,omitempty"`

	StudentPaymentDetailCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_payment_detail_created_at" json:"student_payment_detail_created_at"`
	StudentPaymentDetailUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_payment_detail_updated_at" json:"student_payment_detail_updated_at"`
}

func (StudentPaymentDetailModel) TableName() string { return "student_payment_details" }

type StudentHostelDetailModel struct {
	StudentHostelDetailID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_hostel_detail_id" json:"student_hostel_detail_id"`
	StudentHostelDetailStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_hostel_detail_student_id;uniqueIndex:uq_student_hostel_details_student" json:"student_hostel_detail_student_id"`

	StudentHostelDetailHostelName *string `gorm:"type:varchar(120);column:student_hostel_detail_hostel_name" json:"student_hostel_detail_hostel_name,omitempty"`
	StudentHostelDetailRoomNumber *string `gorm:"type:varchar(20);column:student_hostel_detail_room_number" json:"student_hostel_detail_room_number,omitempty"`
	StudentHostelDetailWardenName *string `gorm:"type:varchar(120);column:student_hostel_detail_warden_name" json:"student_hostel_detail_warden_name,omitempty"`

	StudentHostelDetailCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_hostel_detail_created_at" json:"student_hostel_detail_created_at"`
	StudentHostelDetailUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_hostel_detail_updated_at" json:"student_hostel_detail_updated_at"`
}

func (StudentHostelDetailModel) TableName() string { return "student_hostel_details" }

// Flag fasilitas disimpan sebagai JSON bebas (transport, hostel, library, ...).
type StudentFacilityModel struct {
	StudentFacilityID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_facility_id" json:"student_facility_id"`
	StudentFacilityStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_facility_student_id;uniqueIndex:uq_student_facilities_student" json:"student_facility_student_id"`

	StudentFacilityFlags datatypes.JSON `gorm:"column:student_facility_flags" json:"student_facility_flags,omitempty"`

	StudentFacilityCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_facility_created_at" json:"student_facility_created_at"`
	StudentFacilityUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_facility_updated_at" json:"student_facility_updated_at"`
}

func (StudentFacilityModel) TableName() string { return "student_facilities" }

type StudentAddressModel struct {
	StudentAddressID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_address_id" json:"student_address_id"`
	StudentAddressStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_address_student_id;index:idx_student_addresses_student" json:"student_address_student_id"`

	StudentAddressType    string  `gorm:"type:varchar(20);not null;default:'current';column:student_address_type" json:"student_address_type"`
	StudentAddressLine1   string  `gorm:"type:varchar(200);not null;column:student_address_line1" json:"student_address_line1"`
	StudentAddressLine2   *string `gorm:"type:varchar(200);column:student_address_line2" json:"student_address_line2,omitempty"`
	StudentAddressCity    string  `gorm:"type:varchar(80);not null;column:student_address_city" json:"student_address_city"`
	StudentAddressState   string  `gorm:"type:varchar(80);not null;column:student_address_state" json:"student_address_state"`
	StudentAddressPincode string  `gorm:"type:varchar(10);not null;column:student_address_pincode" json:"student_address_pincode"`

	// urutan 1-based; alamat pertama dianggap primary
	StudentAddressOrder int `gorm:"not null;default:1;column:student_address_order" json:"student_address_order"`

	StudentAddressCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_address_created_at" json:"student_address_created_at"`
	StudentAddressUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_address_updated_at" json:"student_address_updated_at"`
}

func (StudentAddressModel) TableName() string { return "student_addresses" }

type StudentDocumentModel struct {
	StudentDocumentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_document_id" json:"student_document_id"`
	StudentDocumentStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_document_student_id;index:idx_student_documents_student" json:"student_document_student_id"`

	StudentDocumentName    string `gorm:"type:varchar(160);not null;column:student_document_name" json:"student_document_name"`
	StudentDocumentFileURL string `gorm:"type:text;not null;column:student_document_file_url" json:"student_document_file_url"`

	StudentDocumentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_document_created_at" json:"student_document_created_at"`
}

func (StudentDocumentModel) TableName() string { return "student_documents" }
