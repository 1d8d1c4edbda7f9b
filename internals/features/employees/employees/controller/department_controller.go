// file: internals/features/employees/employees/controller/department_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	empDTO "sekolahku_backend/internals/features/employees/employees/dto"
	empModel "sekolahku_backend/internals/features/employees/employees/model"
	helper "sekolahku_backend/internals/helpers"
)

type DepartmentController struct {
	DB *gorm.DB
}

func (h *DepartmentController) Create(c *fiber.Ctx) error {
	var req empDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &empModel.DepartmentModel{DepartmentName: strings.TrimSpace(req.Name)}
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Nama departemen sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat departemen")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Departemen dibuat", m)
}

func (h *DepartmentController) List(c *fiber.Ctx) error {
	var rows []empModel.DepartmentModel
	if err := h.DB.WithContext(c.Context()).
		Order("department_name").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil departemen")
	}
	return helper.Success(c, "OK", rows)
}

func (h *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req empDTO.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m empModel.DepartmentModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Departemen tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil departemen")
	}

	m.DepartmentName = strings.TrimSpace(req.Name)
	m.DepartmentUpdatedAt = time.Now()
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Nama departemen sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan departemen")
	}
	return helper.Success(c, "Departemen diperbarui", m)
}

// Delete ditolak selama masih ada pegawai di dalamnya.
func (h *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var employeeCount int64
	if err := h.DB.WithContext(c.Context()).Model(&empModel.EmployeeModel{}).
		Where("employee_department_id = ?", id).
		Count(&employeeCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pegawai")
	}
	if employeeCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Departemen masih punya pegawai")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&empModel.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus departemen")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Departemen tidak ditemukan")
	}
	return helper.Success(c, "Departemen dihapus", nil)
}
