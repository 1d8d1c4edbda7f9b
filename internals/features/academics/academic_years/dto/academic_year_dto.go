// file: internals/features/academics/academic_years/dto/academic_year_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/academics/academic_years/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

type CreateAcademicYearRequest struct {
	Name      string `json:"academic_year_name" validate:"required,max=40"`
	StartDate string `json:"academic_year_start_date" validate:"required"`
	EndDate   string `json:"academic_year_end_date" validate:"required"`
	IsActive  *bool  `json:"academic_year_is_active" validate:"omitempty"`
}

func (r *CreateAcademicYearRequest) ToModel() (*model.AcademicYearModel, error) {
	start, err := dbtime.ParseDay(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dbtime.ParseDay(r.EndDate)
	if err != nil {
		return nil, err
	}
	m := &model.AcademicYearModel{
		AcademicYearName:      r.Name,
		AcademicYearStartDate: datatypes.Date(start),
		AcademicYearEndDate:   datatypes.Date(end),
	}
	if r.IsActive != nil {
		m.AcademicYearIsActive = *r.IsActive
	}
	return m, nil
}

type UpdateAcademicYearRequest struct {
	Name      *string `json:"academic_year_name" validate:"omitempty,max=40"`
	StartDate *string `json:"academic_year_start_date" validate:"omitempty"`
	EndDate   *string `json:"academic_year_end_date" validate:"omitempty"`
}

// ApplyTo menyalin field yang dikirim saja.
func (r *UpdateAcademicYearRequest) ApplyTo(m *model.AcademicYearModel) error {
	if r.Name != nil {
		m.AcademicYearName = *r.Name
	}
	if r.StartDate != nil {
		start, err := dbtime.ParseDay(*r.StartDate)
		if err != nil {
			return err
		}
		m.AcademicYearStartDate = datatypes.Date(start)
	}
	if r.EndDate != nil {
		end, err := dbtime.ParseDay(*r.EndDate)
		if err != nil {
			return err
		}
		m.AcademicYearEndDate = datatypes.Date(end)
	}
	m.AcademicYearUpdatedAt = time.Now()
	return nil
}
