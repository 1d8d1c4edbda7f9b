// file: internals/features/transport/buses/controller/bus_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	busDTO "sekolahku_backend/internals/features/transport/buses/dto"
	busModel "sekolahku_backend/internals/features/transport/buses/model"
	helper "sekolahku_backend/internals/helpers"
)

type BusController struct {
	DB *gorm.DB
}

var validate = validator.New()

func (h *BusController) Create(c *fiber.Ctx) error {
	var req busDTO.CreateBusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Nomor bus sudah dipakai")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat bus")
		}
		if len(req.Stops) > 0 {
			rows := busDTO.BuildStops(m.BusID, req.Stops)
			if err := tx.Create(&rows).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat halte")
			}
			m.BusStops = rows
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Bus dibuat", m)
}

func (h *BusController) List(c *fiber.Ctx) error {
	var rows []busModel.BusModel
	if err := h.DB.WithContext(c.Context()).
		Preload("BusStops", func(db *gorm.DB) *gorm.DB {
			return db.Order("bus_stop_order")
		}).
		Order("bus_number").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil bus")
	}
	return helper.Success(c, "OK", rows)
}

func (h *BusController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m busModel.BusModel
	if err := h.DB.WithContext(c.Context()).
		Preload("BusStops", func(db *gorm.DB) *gorm.DB {
			return db.Order("bus_stop_order")
		}).
		First(&m, "bus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bus tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil bus")
	}
	return helper.Success(c, "OK", m)
}

// Update halte = replace-set: hapus semua lalu insert urutan baru.
func (h *BusController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req busDTO.UpdateBusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m busModel.BusModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "bus_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bus tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil bus")
		}

		req.ApplyTo(&m)
		if err := tx.Save(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Nomor bus sudah dipakai")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan bus")
		}

		if req.Stops != nil {
			if err := tx.Where("bus_stop_bus_id = ?", id).
				Delete(&busModel.BusStopModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus halte lama")
			}
			if len(*req.Stops) > 0 {
				rows := busDTO.BuildStops(id, *req.Stops)
				if err := tx.Create(&rows).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat halte baru")
				}
				m.BusStops = rows
			} else {
				m.BusStops = nil
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Bus diperbarui", m)
}

func (h *BusController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bus_stop_bus_id = ?", id).
			Delete(&busModel.BusStopModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus halte")
		}
		res := tx.Delete(&busModel.BusModel{}, "bus_id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus bus")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Bus tidak ditemukan")
		}
		return nil
	}); err != nil {
		return err
	}
	return helper.Success(c, "Bus dihapus", nil)
}
