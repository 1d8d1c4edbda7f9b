// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "sekolahku_backend/internals/features/academics/subjects/dto"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	subjectService "sekolahku_backend/internals/features/academics/subjects/service"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

var validate = validator.New()

func (h *SubjectController) Create(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m *subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		code := ""
		if req.Code != nil {
			code = *req.Code
		} else {
			// generate dari inisial + standard, hindari tabrakan dengan counter
			base := subjectService.BaseSubjectCode(req.Name, req.Standard)
			var existing []string
			if err := tx.Model(&subjectModel.SubjectModel{}).
				Where("subject_code LIKE ?", base+"%").
				Pluck("subject_code", &existing).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kode subject")
			}
			taken := make(map[string]bool, len(existing))
			for _, codeTaken := range existing {
				taken[codeTaken] = true
			}
			code = subjectService.NextAvailableCode(base, taken)
		}

		m = req.ToModel(code)
		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Nama atau kode subject sudah dipakai")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat subject")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject dibuat", m)
}

func (h *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&subjectModel.SubjectModel{})
	if std := c.Query("standard"); std != "" {
		q = q.Where("subject_standard = ?", std)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("subject_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung subject")
	}

	var rows []subjectModel.SubjectModel
	if err := q.Order("subject_name").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil subject")
	}

	return helper.Success(c, "OK", fiber.Map{
		"subjects":   rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (h *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil subject")
	}

	var offerings []subjectModel.CourseOfferingModel
	if err := h.DB.WithContext(c.Context()).
		Where("course_offering_subject_id = ?", id).
		Find(&offerings).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offering")
	}

	return helper.Success(c, "OK", fiber.Map{
		"subject":   m,
		"offerings": offerings,
	})
}

func (h *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil subject")
	}

	if req.Name != nil {
		m.SubjectName = *req.Name
	}
	if req.Code != nil {
		m.SubjectCode = *req.Code
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Nama atau kode subject sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan subject")
	}
	return helper.Success(c, "Subject diperbarui", m)
}

// Delete ditolak selama subject masih punya offering (lindungi histori).
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var offerings int64
	if err := h.DB.WithContext(c.Context()).Model(&subjectModel.CourseOfferingModel{}).
		Where("course_offering_subject_id = ?", id).
		Count(&offerings).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek offering")
	}
	if offerings > 0 {
		return fiber.NewError(fiber.StatusConflict, "Subject masih ditawarkan di kelas, tidak bisa dihapus")
	}

	res := h.DB.WithContext(c.Context()).Delete(&subjectModel.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus subject")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	return helper.Success(c, "Subject dihapus", nil)
}
