// file: internals/features/academics/timetables/controller/timetable_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ttDTO "sekolahku_backend/internals/features/academics/timetables/dto"
	ttModel "sekolahku_backend/internals/features/academics/timetables/model"
	helper "sekolahku_backend/internals/helpers"
)

type TimetableController struct {
	DB *gorm.DB
}

var validate = validator.New()

func (h *TimetableController) Create(c *fiber.Ctx) error {
	var req ttDTO.CreateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &ttModel.TimetableModel{
		TimetableClassID:        req.ClassID,
		TimetableAcademicYearID: req.AcademicYearID,
	}
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Timetable untuk kelas+tahun ini sudah ada")
			}
			if helper.IsForeignKeyViolation(err) {
				return fiber.NewError(fiber.StatusNotFound, "Kelas atau tahun ajaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat timetable")
		}
		if len(req.Slots) > 0 {
			rows := ttDTO.BuildSlots(m.TimetableID, req.Slots)
			if err := tx.Create(&rows).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slot")
			}
			m.TimetableSlots = rows
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timetable dibuat", m)
}

func (h *TimetableController) GetByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	q := h.DB.WithContext(c.Context()).
		Preload("TimetableSlots", func(db *gorm.DB) *gorm.DB {
			return db.Order("timetable_slot_order")
		}).
		Where("timetable_class_id = ?", classID)
	if yearID := c.Query("academic_year_id"); yearID != "" {
		if id, parseErr := uuid.Parse(yearID); parseErr == nil {
			q = q.Where("timetable_academic_year_id = ?", id)
		}
	}

	var m ttModel.TimetableModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Timetable tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil timetable")
	}
	return helper.Success(c, "OK", m)
}

// Update slot = replace-set: hapus semua anak lalu insert list baru.
// Slot tidak dirujuk entity lain, jadi identitas anak boleh hilang.
func (h *TimetableController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req ttDTO.UpdateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m ttModel.TimetableModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "timetable_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Timetable tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil timetable")
		}

		if req.Slots != nil {
			if err := tx.Where("timetable_slot_timetable_id = ?", id).
				Delete(&ttModel.TimetableSlotModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus slot lama")
			}
			if len(*req.Slots) > 0 {
				rows := ttDTO.BuildSlots(id, *req.Slots)
				if err := tx.Create(&rows).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slot baru")
				}
				m.TimetableSlots = rows
			} else {
				m.TimetableSlots = nil
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Timetable diperbarui", m)
}

func (h *TimetableController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// cascade manual: slot dulu, lalu parent
		if err := tx.Where("timetable_slot_timetable_id = ?", id).
			Delete(&ttModel.TimetableSlotModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus slot")
		}
		res := tx.Delete(&ttModel.TimetableModel{}, "timetable_id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus timetable")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Timetable tidak ditemukan")
		}
		return nil
	}); err != nil {
		return err
	}
	return helper.Success(c, "Timetable dihapus", nil)
}
