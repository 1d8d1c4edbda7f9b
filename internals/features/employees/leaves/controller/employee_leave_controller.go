// file: internals/features/employees/leaves/controller/employee_leave_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	empAttModel "sekolahku_backend/internals/features/employees/attendance/model"
	empModel "sekolahku_backend/internals/features/employees/employees/model"
	leaveDTO "sekolahku_backend/internals/features/employees/leaves/dto"
	leaveModel "sekolahku_backend/internals/features/employees/leaves/model"
	leaveService "sekolahku_backend/internals/features/employees/leaves/service"
	stuAttModel "sekolahku_backend/internals/features/students/attendance/model"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

type EmployeeLeaveController struct {
	DB *gorm.DB
}

var validate = validator.New()

func leaveRemark(leaveID uuid.UUID) string {
	return fmt.Sprintf("Cuti disetujui (%s)", leaveID)
}

func (h *EmployeeLeaveController) Create(c *fiber.Ctx) error {
	var req leaveDTO.CreateEmployeeLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := dbtime.ParseDay(req.StartDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	end, err := dbtime.ParseDay(req.EndDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if start.After(end) {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal mulai setelah tanggal selesai")
	}

	m := &leaveModel.EmployeeLeaveModel{
		EmployeeLeaveEmployeeID: req.EmployeeID,
		EmployeeLeaveType:       req.Type,
		EmployeeLeaveStartDate:  datatypes.Date(start),
		EmployeeLeaveEndDate:    datatypes.Date(end),
		EmployeeLeaveReason:     req.Reason,
		EmployeeLeaveStatus:     leaveModel.LeaveStatusPending,
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var employeeCount int64
		if err := tx.Model(&empModel.EmployeeModel{}).
			Where("employee_id = ?", req.EmployeeID).
			Count(&employeeCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pegawai")
		}
		if employeeCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}

		if err := tx.Create(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pengajuan cuti")
		}
		history := &leaveModel.LeaveStatusHistoryModel{
			LeaveStatusHistoryLeaveID: m.EmployeeLeaveID,
			LeaveStatusHistoryStatus:  leaveModel.LeaveStatusPending,
		}
		if err := tx.Create(history).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis history cuti")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan cuti dibuat", m)
}

/*
=========================================================

	TRANSITION (approve/reject).
	Approve menulis attendance on_leave per hari rentang
	cuti — transaksi yang sama dengan perubahan status.

=========================================================
*/
func (h *EmployeeLeaveController) Transition(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req leaveDTO.TransitionEmployeeLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m leaveModel.EmployeeLeaveModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "employee_leave_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pengajuan cuti tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
		}

		if err := leaveService.CheckTransition(m.EmployeeLeaveStatus, req.Status); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		m.EmployeeLeaveStatus = req.Status
		m.EmployeeLeaveUpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengajuan cuti")
		}

		history := &leaveModel.LeaveStatusHistoryModel{
			LeaveStatusHistoryLeaveID: m.EmployeeLeaveID,
			LeaveStatusHistoryStatus:  req.Status,
			LeaveStatusHistoryComment: req.Comment,
		}
		if err := tx.Create(history).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis history cuti")
		}

		if req.Status == leaveModel.LeaveStatusApproved {
			days, expandErr := dbtime.ExpandDays(time.Time(m.EmployeeLeaveStartDate), time.Time(m.EmployeeLeaveEndDate))
			if expandErr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rentang cuti tidak valid")
			}
			remark := leaveRemark(m.EmployeeLeaveID)
			rows := make([]empAttModel.EmployeeAttendanceModel, 0, len(days))
			for _, d := range days {
				rows = append(rows, empAttModel.EmployeeAttendanceModel{
					EmployeeAttendanceEmployeeID: m.EmployeeLeaveEmployeeID,
					EmployeeAttendanceDate:       datatypes.Date(d),
					EmployeeAttendanceStatus:     stuAttModel.AttendanceStatusOnLeave,
					EmployeeAttendanceRemarks:    &remark,
					EmployeeAttendanceSource:     stuAttModel.AttendanceSourceManual,
				})
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "employee_attendance_employee_id"},
					{Name: "employee_attendance_date"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"employee_attendance_status",
					"employee_attendance_remarks",
					"employee_attendance_updated_at",
				}),
			}).Create(&rows).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis attendance cuti")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Status cuti diperbarui", m)
}

// Cancel: jalur pemohon, hanya sebelum tanggal mulai.
func (h *EmployeeLeaveController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m leaveModel.EmployeeLeaveModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "employee_leave_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pengajuan cuti tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
		}

		// pegawai hanya boleh membatalkan cutinya sendiri
		if role, _ := c.Locals(authmw.LocRole).(string); role == userModel.RoleEmployee {
			userID, _ := c.Locals(authmw.LocUserID).(uuid.UUID)
			var owner empModel.EmployeeModel
			if err := tx.First(&owner, "employee_id = ?", m.EmployeeLeaveEmployeeID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pemilik cuti")
			}
			if owner.EmployeeUserID == nil || *owner.EmployeeUserID != userID {
				return fiber.NewError(fiber.StatusForbidden, "Cuti ini bukan milik Anda")
			}
		}

		if m.EmployeeLeaveStatus != leaveModel.LeaveStatusPending &&
			m.EmployeeLeaveStatus != leaveModel.LeaveStatusApproved {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Hanya cuti pending/approved yang bisa dibatalkan")
		}
		if !leaveService.IsCancellable(time.Time(m.EmployeeLeaveStartDate), time.Now()) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Cuti yang sudah mulai tidak bisa dibatalkan")
		}

		wasApproved := m.EmployeeLeaveStatus == leaveModel.LeaveStatusApproved
		m.EmployeeLeaveStatus = leaveModel.LeaveStatusCancelled
		m.EmployeeLeaveUpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengajuan cuti")
		}
		history := &leaveModel.LeaveStatusHistoryModel{
			LeaveStatusHistoryLeaveID: m.EmployeeLeaveID,
			LeaveStatusHistoryStatus:  leaveModel.LeaveStatusCancelled,
		}
		if err := tx.Create(history).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis history cuti")
		}

		if wasApproved {
			cancelled := fmt.Sprintf("Cuti dibatalkan (%s)", m.EmployeeLeaveID)
			if err := tx.Model(&empAttModel.EmployeeAttendanceModel{}).
				Where("employee_attendance_employee_id = ?", m.EmployeeLeaveEmployeeID).
				Where("employee_attendance_status = ?", stuAttModel.AttendanceStatusOnLeave).
				Where("employee_attendance_remarks = ?", leaveRemark(m.EmployeeLeaveID)).
				Updates(map[string]interface{}{
					"employee_attendance_status":     stuAttModel.AttendanceStatusAbsent,
					"employee_attendance_remarks":    cancelled,
					"employee_attendance_updated_at": time.Now(),
				}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal me-revert attendance cuti")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Cuti dibatalkan", m)
}

func (h *EmployeeLeaveController) ListByEmployee(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	q := h.DB.WithContext(c.Context()).
		Preload("EmployeeLeaveHistories", func(db *gorm.DB) *gorm.DB {
			return db.Order("leave_status_history_created_at")
		}).
		Where("employee_leave_employee_id = ?", employeeID)
	if status := c.Query("status"); status != "" {
		q = q.Where("employee_leave_status = ?", status)
	}

	var rows []leaveModel.EmployeeLeaveModel
	if err := q.Order("employee_leave_start_date DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil cuti")
	}
	return helper.Success(c, "OK", rows)
}
