// file: internals/features/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	yDTO "sekolahku_backend/internals/features/academics/academic_years/dto"
	yModel "sekolahku_backend/internals/features/academics/academic_years/model"
	classModel "sekolahku_backend/internals/features/academics/classes/model"
	helper "sekolahku_backend/internals/helpers"
)

type AcademicYearController struct {
	DB *gorm.DB
}

var validate = validator.New()

func (h *AcademicYearController) Create(c *fiber.Ctx) error {
	var req yDTO.CreateAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// Maksimal satu tahun aktif: matikan yang lain dulu.
		if m.AcademicYearIsActive {
			if err := tx.Model(&yModel.AcademicYearModel{}).
				Where("academic_year_is_active = TRUE").
				Update("academic_year_is_active", false).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan tahun ajaran lama")
			}
		}
		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Nama tahun ajaran sudah dipakai")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tahun ajaran")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tahun ajaran dibuat", m)
}

func (h *AcademicYearController) List(c *fiber.Ctx) error {
	var rows []yModel.AcademicYearModel
	if err := h.DB.WithContext(c.Context()).
		Order("academic_year_start_date DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran")
	}
	return helper.Success(c, "OK", rows)
}

func (h *AcademicYearController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m yModel.AcademicYearModel
	if err := h.DB.WithContext(c.Context()).First(&m, "academic_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran")
	}
	return helper.Success(c, "OK", m)
}

func (h *AcademicYearController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req yDTO.UpdateAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m yModel.AcademicYearModel
	if err := h.DB.WithContext(c.Context()).First(&m, "academic_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran")
	}
	if err := req.ApplyTo(&m); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Nama tahun ajaran sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan tahun ajaran")
	}
	return helper.Success(c, "Tahun ajaran diperbarui", m)
}

// SetActive: satu transaksi — matikan semua, nyalakan target.
func (h *AcademicYearController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m yModel.AcademicYearModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "academic_year_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran")
		}
		if err := tx.Model(&yModel.AcademicYearModel{}).
			Where("academic_year_is_active = TRUE AND academic_year_id <> ?", id).
			Update("academic_year_is_active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan tahun ajaran lama")
		}
		if err := tx.Model(&m).Update("academic_year_is_active", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengaktifkan tahun ajaran")
		}
		m.AcademicYearIsActive = true
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Tahun ajaran diaktifkan", m)
}

func (h *AcademicYearController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	// Tolak kalau masih ada kelas yang menunjuk tahun ini (jaga histori).
	var classCount int64
	if err := h.DB.WithContext(c.Context()).Model(&classModel.ClassModel{}).
		Where("class_academic_year_id = ?", id).
		Count(&classCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kelas terkait")
	}
	if classCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Tahun ajaran masih dipakai kelas, tidak bisa dihapus")
	}

	res := h.DB.WithContext(c.Context()).Delete(&yModel.AcademicYearModel{}, "academic_year_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus tahun ajaran")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
	}
	return helper.Success(c, "Tahun ajaran dihapus", nil)
}
