// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Name     string `json:"subject_name" validate:"required,max=120"`
	Standard string `json:"subject_standard" validate:"required,max=10"`

	// Kode opsional; kalau kosong di-generate dari inisial + standard.
	Code *string `json:"subject_code" validate:"omitempty,max=40"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Standard = strings.TrimSpace(r.Standard)
	if r.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*r.Code))
		if code == "" {
			r.Code = nil
		} else {
			r.Code = &code
		}
	}
}

func (r *CreateSubjectRequest) ToModel(code string) *model.SubjectModel {
	return &model.SubjectModel{
		SubjectName:     r.Name,
		SubjectCode:     code,
		SubjectStandard: r.Standard,
	}
}

type UpdateSubjectRequest struct {
	Name *string `json:"subject_name" validate:"omitempty,max=120"`
	Code *string `json:"subject_code" validate:"omitempty,max=40"`
}

// SyncOfferingsRequest: rekonsiliasi penawaran subject terhadap
// (standard × sections) pada tahun ajaran aktif.
type SyncOfferingsRequest struct {
	Standard    string     `json:"standard" validate:"required,max=10"`
	Sections    []string   `json:"sections" validate:"required,min=1,dive,required,max=5"`
	TeacherID   *uuid.UUID `json:"teacher_id" validate:"omitempty"`
	IsMandatory bool       `json:"is_mandatory"`
}

type CreateCourseMaterialRequest struct {
	Name    string `json:"course_material_name" validate:"required,max=160"`
	FileURL string `json:"course_material_file_url" validate:"required"`
}

func (r *CreateCourseMaterialRequest) ToModel(offeringID uuid.UUID) *model.CourseMaterialModel {
	return &model.CourseMaterialModel{
		CourseMaterialOfferingID: offeringID,
		CourseMaterialName:       r.Name,
		CourseMaterialFileURL:    r.FileURL,
	}
}
