// file: internals/features/employees/attendance/controller/employee_attendance_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	empAttDTO "sekolahku_backend/internals/features/employees/attendance/dto"
	empAttModel "sekolahku_backend/internals/features/employees/attendance/model"
	empModel "sekolahku_backend/internals/features/employees/employees/model"
	stuAttModel "sekolahku_backend/internals/features/students/attendance/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

type EmployeeAttendanceController struct {
	DB *gorm.DB
}

var validate = validator.New()

func upsertEmployeeAttendanceRows(tx *gorm.DB, rows []empAttModel.EmployeeAttendanceModel) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "employee_attendance_employee_id"},
			{Name: "employee_attendance_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"employee_attendance_status",
			"employee_attendance_check_in",
			"employee_attendance_check_out",
			"employee_attendance_remarks",
			"employee_attendance_source",
			"employee_attendance_updated_at",
		}),
	}).Create(&rows).Error
}

func (h *EmployeeAttendanceController) Upsert(c *fiber.Ctx) error {
	var req empAttDTO.UpsertEmployeeAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !stuAttModel.IsValidAttendanceStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Status kehadiran tidak dikenal")
	}
	day, err := dbtime.ParseDay(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var employeeCount int64
	if err := h.DB.WithContext(c.Context()).Model(&empModel.EmployeeModel{}).
		Where("employee_id = ?", req.EmployeeID).
		Count(&employeeCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pegawai")
	}
	if employeeCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}

	rows := []empAttModel.EmployeeAttendanceModel{{
		EmployeeAttendanceEmployeeID: req.EmployeeID,
		EmployeeAttendanceDate:       datatypes.Date(day),
		EmployeeAttendanceStatus:     req.Status,
		EmployeeAttendanceCheckIn:    req.CheckIn,
		EmployeeAttendanceCheckOut:   req.CheckOut,
		EmployeeAttendanceRemarks:    req.Remarks,
		EmployeeAttendanceSource:     stuAttModel.AttendanceSourceManual,
	}}
	if err := upsertEmployeeAttendanceRows(h.DB.WithContext(c.Context()), rows); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}
	return helper.Success(c, "Kehadiran disimpan", rows[0])
}

func (h *EmployeeAttendanceController) UpsertBatch(c *fiber.Ctx) error {
	var req empAttDTO.BatchEmployeeAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	day, err := dbtime.ParseDay(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	for _, e := range req.Entries {
		if !stuAttModel.IsValidAttendanceStatus(e.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Status kehadiran tidak dikenal")
		}
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		ids := make([]uuid.UUID, 0, len(req.Entries))
		for _, e := range req.Entries {
			ids = append(ids, e.EmployeeID)
		}
		var employeeCount int64
		if err := tx.Model(&empModel.EmployeeModel{}).
			Where("employee_id IN ?", ids).
			Count(&employeeCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pegawai")
		}
		seen := make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			seen[id] = struct{}{}
		}
		if int(employeeCount) != len(seen) {
			return fiber.NewError(fiber.StatusNotFound, "Ada pegawai yang tidak ditemukan")
		}

		rows := make([]empAttModel.EmployeeAttendanceModel, 0, len(req.Entries))
		for _, e := range req.Entries {
			rows = append(rows, empAttModel.EmployeeAttendanceModel{
				EmployeeAttendanceEmployeeID: e.EmployeeID,
				EmployeeAttendanceDate:       datatypes.Date(day),
				EmployeeAttendanceStatus:     e.Status,
				EmployeeAttendanceCheckIn:    e.CheckIn,
				EmployeeAttendanceCheckOut:   e.CheckOut,
				EmployeeAttendanceRemarks:    e.Remarks,
				EmployeeAttendanceSource:     stuAttModel.AttendanceSourceManualBulk,
			})
		}
		if err := upsertEmployeeAttendanceRows(tx, rows); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Kehadiran batch disimpan", fiber.Map{
		"date":  dbtime.DayUTC(day).Format(dbtime.DateLayout),
		"count": len(req.Entries),
	})
}

func (h *EmployeeAttendanceController) ListByEmployee(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	q := h.DB.WithContext(c.Context()).
		Where("employee_attendance_employee_id = ?", employeeID)
	if from := c.Query("from"); from != "" {
		d, parseErr := dbtime.ParseDay(from)
		if parseErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, parseErr.Error())
		}
		q = q.Where("employee_attendance_date >= ?", datatypes.Date(d))
	}
	if to := c.Query("to"); to != "" {
		d, parseErr := dbtime.ParseDay(to)
		if parseErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, parseErr.Error())
		}
		q = q.Where("employee_attendance_date <= ?", datatypes.Date(d))
	}

	var rows []empAttModel.EmployeeAttendanceModel
	if err := q.Order("employee_attendance_date").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}
	return helper.Success(c, "OK", rows)
}
