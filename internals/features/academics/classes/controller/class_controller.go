// file: internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "sekolahku_backend/internals/features/academics/classes/dto"
	classModel "sekolahku_backend/internals/features/academics/classes/model"
	offeringModel "sekolahku_backend/internals/features/academics/subjects/model"
	ttModel "sekolahku_backend/internals/features/academics/timetables/model"
	admissionModel "sekolahku_backend/internals/features/students/admissions/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

var validate = validator.New()

func (h *ClassController) Create(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !classModel.IsValidMedium(req.Medium) {
		return fiber.NewError(fiber.StatusBadRequest, "Medium tidak dikenal (english/hindi/gujarati)")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Kombinasi tahun+standard+section+medium sudah ada")
		}
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas dibuat", m)
}

func (h *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&classModel.ClassModel{})
	if yearID := c.Query("academic_year_id"); yearID != "" {
		if id, err := uuid.Parse(yearID); err == nil {
			q = q.Where("class_academic_year_id = ?", id)
		}
	}
	if std := c.Query("standard"); std != "" {
		q = q.Where("class_standard = ?", std)
	}
	if medium := c.Query("medium"); medium != "" {
		q = q.Where("class_medium = ?", medium)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}

	var rows []classModel.ClassModel
	if err := q.Order("class_standard, class_section").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"classes":    rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (h *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m classModel.ClassModel
	if err := h.DB.WithContext(c.Context()).First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	// jumlah terisi saat ini, berguna untuk form admission
	var admitted int64
	_ = h.DB.WithContext(c.Context()).Model(&admissionModel.AdmissionModel{}).
		Where("admission_class_id = ?", id).
		Count(&admitted).Error

	return helper.Success(c, "OK", fiber.Map{
		"class":           m,
		"admission_count": admitted,
	})
}

func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Medium != nil && !classModel.IsValidMedium(*req.Medium) {
		return fiber.NewError(fiber.StatusBadRequest, "Medium tidak dikenal (english/hindi/gujarati)")
	}

	var m classModel.ClassModel
	if err := h.DB.WithContext(c.Context()).First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	// Kapasitas baru tidak boleh lebih kecil dari jumlah admission yang sudah ada.
	if req.Capacity != nil {
		var admitted int64
		if err := h.DB.WithContext(c.Context()).Model(&admissionModel.AdmissionModel{}).
			Where("admission_class_id = ?", id).
			Count(&admitted).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek admission")
		}
		if int64(*req.Capacity) < admitted {
			return fiber.NewError(fiber.StatusConflict, "Kapasitas baru lebih kecil dari jumlah siswa terdaftar")
		}
	}

	req.ApplyTo(&m)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Kombinasi tahun+standard+section+medium sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}
	return helper.Success(c, "Kelas diperbarui", m)
}

// Delete menolak kalau masih ada dependent aktif (admission / offering) —
// kelas dengan histori tidak ikut pola cascade.
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var admitted int64
	if err := h.DB.WithContext(c.Context()).Model(&admissionModel.AdmissionModel{}).
		Where("admission_class_id = ?", id).
		Count(&admitted).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek admission")
	}
	if admitted > 0 {
		return fiber.NewError(fiber.StatusConflict, "Kelas masih punya siswa terdaftar, tidak bisa dihapus")
	}

	var offerings int64
	if err := h.DB.WithContext(c.Context()).Model(&offeringModel.CourseOfferingModel{}).
		Where("course_offering_class_id = ?", id).
		Count(&offerings).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek course offering")
	}
	if offerings > 0 {
		return fiber.NewError(fiber.StatusConflict, "Kelas masih punya course offering, tidak bisa dihapus")
	}

	// timetable kelas ikut terhapus (slot dulu, lalu parent)
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var timetableIDs []uuid.UUID
		if err := tx.Model(&ttModel.TimetableModel{}).
			Where("timetable_class_id = ?", id).
			Pluck("timetable_id", &timetableIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil timetable")
		}
		if len(timetableIDs) > 0 {
			if err := tx.Where("timetable_slot_timetable_id IN ?", timetableIDs).
				Delete(&ttModel.TimetableSlotModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus slot timetable")
			}
			if err := tx.Where("timetable_id IN ?", timetableIDs).
				Delete(&ttModel.TimetableModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus timetable")
			}
		}

		res := tx.Delete(&classModel.ClassModel{}, "class_id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kelas")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil
	}); err != nil {
		return err
	}
	return helper.Success(c, "Kelas dihapus", nil)
}
