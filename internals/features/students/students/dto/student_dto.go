// file: internals/features/students/students/dto/student_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/students/students/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type StudentDetailRequest struct {
	AadhaarNumber *string `json:"student_detail_aadhaar_number" validate:"omitempty,max=20"`
	BloodGroup    *string `json:"student_detail_blood_group" validate:"omitempty,max=5"`
	Nationality   *string `json:"student_detail_nationality" validate:"omitempty,max=40"`
	Religion      *string `json:"student_detail_religion" validate:"omitempty,max=40"`
	Caste         *string `json:"student_detail_caste" validate:"omitempty,max=40"`
	MotherTongue  *string `json:"student_detail_mother_tongue" validate:"omitempty,max=40"`
}

type StudentFamilyDetailRequest struct {
	FatherName       *string `json:"student_family_detail_father_name" validate:"omitempty,max=120"`
	FatherPhone      *string `json:"student_family_detail_father_phone" validate:"omitempty,max=20"`
	FatherOccupation *string `json:"student_family_detail_father_occupation" validate:"omitempty,max=80"`
	MotherName       *string `json:"student_family_detail_mother_name" validate:"omitempty,max=120"`
	MotherPhone      *string `json:"student_family_detail_mother_phone" validate:"omitempty,max=20"`
	GuardianName     *string `json:"student_family_detail_guardian_name" validate:"omitempty,max=120"`
	GuardianPhone    *string `json:"student_family_detail_guardian_phone" validate:"omitempty,max=20"`
}

type StudentPreviousAcademicRequest struct {
	SchoolName   *string  `json:"student_previous_academic_school_name" validate:"omitempty,max=160"`
	LastStandard *string  `json:"student_previous_academic_last_standard" validate:"omitempty,max=10"`
	Percentage   *float64 `json:"student_previous_academic_percentage" validate:"omitempty,min=0,max=100"`
	PassingYear  *int     `json:"student_previous_academic_passing_year" validate:"omitempty,min=1900"`
}

type StudentPaymentDetailRequest struct {
	BankName      *string `json:"student_payment_detail_bank_name" validate:"omitempty,max=120"`
	AccountNumber *string `json:"student_payment_detail_account_number" validate:"omitempty,max=30"`
	IFSCCode      *string `json:"student_payment_detail_ifsc_code" validate:"omitempty,max=15"`
	FeeCategory   *string `json:"student_payment_detail_fee_category" validate:"omitempty,max=40"`
}

type StudentHostelDetailRequest struct {
	HostelName *string `json:"student_hostel_detail_hostel_name" validate:"omitempty,max=120"`
	RoomNumber *string `json:"student_hostel_detail_room_number" validate:"omitempty,max=20"`
	WardenName *string `json:"student_hostel_detail_warden_name" validate:"omitempty,max=120"`
}

type StudentAddressRequest struct {
	Type    string  `json:"student_address_type" validate:"omitempty,max=20"`
	Line1   string  `json:"student_address_line1" validate:"required,max=200"`
	Line2   *string `json:"student_address_line2" validate:"omitempty,max=200"`
	City    string  `json:"student_address_city" validate:"required,max=80"`
	State   string  `json:"student_address_state" validate:"required,max=80"`
	Pincode string  `json:"student_address_pincode" validate:"required,max=10"`
}

type StudentDocumentRequest struct {
	Name    string `json:"student_document_name" validate:"required,max=160"`
	FileURL string `json:"student_document_file_url" validate:"required"`
}

type StudentCredentialRequest struct {
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type CreateStudentRequest struct {
	FirstName string  `json:"student_first_name" validate:"required,max=60"`
	LastName  string  `json:"student_last_name" validate:"required,max=60"`
	Gender    string  `json:"student_gender" validate:"required,max=10"`
	DOB       *string `json:"student_dob" validate:"omitempty"`
	Email     *string `json:"student_email" validate:"omitempty,email,max=120"`
	Phone     *string `json:"student_phone" validate:"omitempty,max=20"`
	PhotoURL  *string `json:"student_photo_url" validate:"omitempty"`

	// Kelas tujuan (opsional): kalau diisi, sekalian dibuat admission +
	// enrollment default ke semua offering kelas itu, satu transaksi.
	ClassID *uuid.UUID `json:"class_id" validate:"omitempty"`

	// Kredensial login (opsional)
	Credential *StudentCredentialRequest `json:"credential" validate:"omitempty"`

	Detail           *StudentDetailRequest           `json:"student_detail" validate:"omitempty"`
	FamilyDetail     *StudentFamilyDetailRequest     `json:"student_family_detail" validate:"omitempty"`
	PreviousAcademic *StudentPreviousAcademicRequest `json:"student_previous_academic" validate:"omitempty"`
	PaymentDetail    *StudentPaymentDetailRequest    `json:"student_payment_detail" validate:"omitempty"`
	HostelDetail     *StudentHostelDetailRequest     `json:"student_hostel_detail" validate:"omitempty"`
	FacilityFlags    map[string]bool                 `json:"student_facility_flags" validate:"omitempty"`
	Addresses        []StudentAddressRequest         `json:"student_addresses" validate:"omitempty,dive"`
	Documents        []StudentDocumentRequest        `json:"student_documents" validate:"omitempty,dive"`
}

func (r *CreateStudentRequest) ToModel() (*model.StudentModel, error) {
	m := &model.StudentModel{
		StudentFirstName: strings.TrimSpace(r.FirstName),
		StudentLastName:  strings.TrimSpace(r.LastName),
		StudentGender:    strings.ToLower(strings.TrimSpace(r.Gender)),
		StudentEmail:     r.Email,
		StudentPhone:     r.Phone,
		StudentPhotoURL:  r.PhotoURL,
		StudentStatus:    model.StudentStatusActive,
	}
	if r.DOB != nil {
		dob, err := dbtime.ParseDay(*r.DOB)
		if err != nil {
			return nil, err
		}
		d := datatypes.Date(dob)
		m.StudentDOB = &d
	}
	return m, nil
}

func (r *StudentDetailRequest) ToModel(studentID uuid.UUID) *model.StudentDetailModel {
	return &model.StudentDetailModel{
		StudentDetailStudentID:     studentID,
		StudentDetailAadhaarNumber: r.AadhaarNumber,
		StudentDetailBloodGroup:    r.BloodGroup,
		StudentDetailNationality:   r.Nationality,
		StudentDetailReligion:      r.Religion,
		StudentDetailCaste:         r.Caste,
		StudentDetailMotherTongue:  r.MotherTongue,
	}
}

func (r *StudentFamilyDetailRequest) ToModel(studentID uuid.UUID) *model.StudentFamilyDetailModel {
	return &model.StudentFamilyDetailModel{
		StudentFamilyDetailStudentID:        studentID,
		StudentFamilyDetailFatherName:       r.FatherName,
		StudentFamilyDetailFatherPhone:      r.FatherPhone,
		StudentFamilyDetailFatherOccupation: r.FatherOccupation,
		StudentFamilyDetailMotherName:       r.MotherName,
		StudentFamilyDetailMotherPhone:      r.MotherPhone,
		StudentFamilyDetailGuardianName:     r.GuardianName,
		StudentFamilyDetailGuardianPhone:    r.GuardianPhone,
	}
}

func (r *StudentPreviousAcademicRequest) ToModel(studentID uuid.UUID) *model.StudentPreviousAcademicModel {
	return &model.StudentPreviousAcademicModel{
		StudentPreviousAcademicStudentID:    studentID,
		StudentPreviousAcademicSchoolName:   r.SchoolName,
		StudentPreviousAcademicLastStandard: r.LastStandard,
		StudentPreviousAcademicPercentage:   r.Percentage,
		StudentPreviousAcademicPassingYear:  r.PassingYear,
	}
}

func (r *StudentPaymentDetailRequest) ToModel(studentID uuid.UUID) *model.StudentPaymentDetailModel {
	return &model.StudentPaymentDetailModel{
		StudentPaymentDetailStudentID:     studentID,
		StudentPaymentDetailBankName:      r.BankName,
		StudentPaymentDetailAccountNumber: r.AccountNumber,
		StudentPaymentDetailIFSCCode:      r.IFSCCode,
		StudentPaymentDetailFeeCategory:   r.FeeCategory,
	}
}

func (r *StudentHostelDetailRequest) ToModel(studentID uuid.UUID) *model.StudentHostelDetailModel {
	return &model.StudentHostelDetailModel{
		StudentHostelDetailStudentID:  studentID,
		StudentHostelDetailHostelName: r.HostelName,
		StudentHostelDetailRoomNumber: r.RoomNumber,
		StudentHostelDetailWardenName: r.WardenName,
	}
}

func FacilityFlagsToModel(studentID uuid.UUID, flags map[string]bool) (*model.StudentFacilityModel, error) {
	raw, err := json.Marshal(flags)
	if err != nil {
		return nil, err
	}
	return &model.StudentFacilityModel{
		StudentFacilityStudentID: studentID,
		StudentFacilityFlags:     datatypes.JSON(raw),
	}, nil
}

// BuildAddresses: urutan 1-based dari index, alamat pertama = primary.
func BuildAddresses(studentID uuid.UUID, reqs []StudentAddressRequest) []model.StudentAddressModel {
	rows := make([]model.StudentAddressModel, 0, len(reqs))
	for i, a := range reqs {
		addrType := a.Type
		if addrType == "" {
			addrType = "current"
		}
		rows = append(rows, model.StudentAddressModel{
			StudentAddressStudentID: studentID,
			StudentAddressType:      addrType,
			StudentAddressLine1:     a.Line1,
			StudentAddressLine2:     a.Line2,
			StudentAddressCity:      a.City,
			StudentAddressState:     a.State,
			StudentAddressPincode:   a.Pincode,
			StudentAddressOrder:     i + 1,
		})
	}
	return rows
}

func BuildDocuments(studentID uuid.UUID, reqs []StudentDocumentRequest) []model.StudentDocumentModel {
	rows := make([]model.StudentDocumentModel, 0, len(reqs))
	for _, d := range reqs {
		rows = append(rows, model.StudentDocumentModel{
			StudentDocumentStudentID: studentID,
			StudentDocumentName:      d.Name,
			StudentDocumentFileURL:   d.FileURL,
		})
	}
	return rows
}

/* =========================================================
   2) UPDATE DTO — detail di-upsert (create-if-absent)
   ========================================================= */

type UpdateStudentRequest struct {
	FirstName *string `json:"student_first_name" validate:"omitempty,max=60"`
	LastName  *string `json:"student_last_name" validate:"omitempty,max=60"`
	Gender    *string `json:"student_gender" validate:"omitempty,max=10"`
	DOB       *string `json:"student_dob" validate:"omitempty"`
	Email     *string `json:"student_email" validate:"omitempty,email,max=120"`
	Phone     *string `json:"student_phone" validate:"omitempty,max=20"`
	PhotoURL  *string `json:"student_photo_url" validate:"omitempty"`
	Status    *string `json:"student_status" validate:"omitempty"`

	Detail           *StudentDetailRequest           `json:"student_detail" validate:"omitempty"`
	FamilyDetail     *StudentFamilyDetailRequest     `json:"student_family_detail" validate:"omitempty"`
	PreviousAcademic *StudentPreviousAcademicRequest `json:"student_previous_academic" validate:"omitempty"`
	PaymentDetail    *StudentPaymentDetailRequest    `json:"student_payment_detail" validate:"omitempty"`
	HostelDetail     *StudentHostelDetailRequest     `json:"student_hostel_detail" validate:"omitempty"`
	FacilityFlags    map[string]bool                 `json:"student_facility_flags" validate:"omitempty"`
}

func (r *UpdateStudentRequest) ApplyTo(m *model.StudentModel) error {
	if r.FirstName != nil {
		m.StudentFirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.StudentLastName = *r.LastName
	}
	if r.Gender != nil {
		m.StudentGender = strings.ToLower(*r.Gender)
	}
	if r.DOB != nil {
		dob, err := dbtime.ParseDay(*r.DOB)
		if err != nil {
			return err
		}
		d := datatypes.Date(dob)
		m.StudentDOB = &d
	}
	if r.Email != nil {
		m.StudentEmail = r.Email
	}
	if r.Phone != nil {
		m.StudentPhone = r.Phone
	}
	if r.PhotoURL != nil {
		m.StudentPhotoURL = r.PhotoURL
	}
	if r.Status != nil {
		m.StudentStatus = *r.Status
	}
	m.StudentUpdatedAt = time.Now()
	return nil
}
