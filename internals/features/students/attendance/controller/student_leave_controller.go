// file: internals/features/students/attendance/controller/student_leave_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	leaveModel "sekolahku_backend/internals/features/employees/leaves/model"
	leaveService "sekolahku_backend/internals/features/employees/leaves/service"
	attDTO "sekolahku_backend/internals/features/students/attendance/dto"
	attModel "sekolahku_backend/internals/features/students/attendance/model"
	studentModel "sekolahku_backend/internals/features/students/students/model"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

type StudentLeaveController struct {
	DB *gorm.DB
}

// Remark penanda baris attendance yang lahir dari approval cuti, supaya
// pembatalan tahu persis baris mana yang harus di-revert.
func leaveRemark(leaveID uuid.UUID) string {
	return fmt.Sprintf("Cuti disetujui (%s)", leaveID)
}

func (h *StudentLeaveController) Create(c *fiber.Ctx) error {
	var req attDTO.CreateStudentLeaveRequest
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

	m := &attModel.StudentLeaveModel{
		StudentLeaveStudentID: req.StudentID,
		StudentLeaveType:      req.Type,
		StudentLeaveStartDate: datatypes.Date(start),
		StudentLeaveEndDate:   datatypes.Date(end),
		StudentLeaveReason:    req.Reason,
		StudentLeaveStatus:    leaveModel.LeaveStatusPending,
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var studentCount int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", req.StudentID).
			Count(&studentCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek siswa")
		}
		if studentCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}

		if err := tx.Create(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pengajuan cuti")
		}
		history := &attModel.StudentLeaveStatusHistoryModel{
			StudentLeaveStatusHistoryLeaveID: m.StudentLeaveID,
			StudentLeaveStatusHistoryStatus:  leaveModel.LeaveStatusPending,
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

	TRANSITION (approve/reject) — admin/teacher.
	Approve sekalian menulis attendance on_leave untuk
	tiap hari rentang cuti, dalam transaksi yang sama.

=========================================================
*/
func (h *StudentLeaveController) Transition(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req attDTO.TransitionStudentLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m attModel.StudentLeaveModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "student_leave_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pengajuan cuti tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
		}

		if err := leaveService.CheckTransition(m.StudentLeaveStatus, req.Status); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		m.StudentLeaveStatus = req.Status
		m.StudentLeaveUpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengajuan cuti")
		}

		history := &attModel.StudentLeaveStatusHistoryModel{
			StudentLeaveStatusHistoryLeaveID: m.StudentLeaveID,
			StudentLeaveStatusHistoryStatus:  req.Status,
			StudentLeaveStatusHistoryComment: req.Comment,
		}
		if err := tx.Create(history).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis history cuti")
		}

		// approval menyebar ke attendance: on_leave untuk tiap hari cuti
		if req.Status == leaveModel.LeaveStatusApproved {
			days, expandErr := dbtime.ExpandDays(time.Time(m.StudentLeaveStartDate), time.Time(m.StudentLeaveEndDate))
			if expandErr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rentang cuti tidak valid")
			}
			remark := leaveRemark(m.StudentLeaveID)
			rows := make([]attModel.StudentAttendanceModel, 0, len(days))
			for _, d := range days {
				rows = append(rows, attModel.StudentAttendanceModel{
					StudentAttendanceStudentID: m.StudentLeaveStudentID,
					StudentAttendanceDate:      datatypes.Date(d),
					StudentAttendanceStatus:    attModel.AttendanceStatusOnLeave,
					StudentAttendanceRemarks:   &remark,
					StudentAttendanceSource:    attModel.AttendanceSourceManual,
				})
			}
			if err := upsertAttendanceRows(tx, rows); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis attendance cuti")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Status cuti diperbarui", m)
}

/*
=========================================================

	CANCEL — jalur pemohon (siswa), hanya sebelum tanggal
	mulai. Baris attendance hasil approval di-revert.

=========================================================
*/
func (h *StudentLeaveController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m attModel.StudentLeaveModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "student_leave_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pengajuan cuti tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
		}

		// siswa hanya boleh membatalkan cutinya sendiri
		if role, _ := c.Locals(authmw.LocRole).(string); role == userModel.RoleStudent {
			userID, _ := c.Locals(authmw.LocUserID).(uuid.UUID)
			var owner studentModel.StudentModel
			if err := tx.First(&owner, "student_id = ?", m.StudentLeaveStudentID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pemilik cuti")
			}
			if owner.StudentUserID == nil || *owner.StudentUserID != userID {
				return fiber.NewError(fiber.StatusForbidden, "Cuti ini bukan milik Anda")
			}
		}

		if m.StudentLeaveStatus != leaveModel.LeaveStatusPending &&
			m.StudentLeaveStatus != leaveModel.LeaveStatusApproved {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Hanya cuti pending/approved yang bisa dibatalkan")
		}
		if !leaveService.IsCancellable(time.Time(m.StudentLeaveStartDate), time.Now()) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Cuti yang sudah mulai tidak bisa dibatalkan")
		}

		wasApproved := m.StudentLeaveStatus == leaveModel.LeaveStatusApproved
		m.StudentLeaveStatus = leaveModel.LeaveStatusCancelled
		m.StudentLeaveUpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengajuan cuti")
		}
		history := &attModel.StudentLeaveStatusHistoryModel{
			StudentLeaveStatusHistoryLeaveID: m.StudentLeaveID,
			StudentLeaveStatusHistoryStatus:  leaveModel.LeaveStatusCancelled,
		}
		if err := tx.Create(history).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis history cuti")
		}

		// revert attendance yang lahir dari approval — dikenali lewat remark
		if wasApproved {
			cancelled := fmt.Sprintf("Cuti dibatalkan (%s)", m.StudentLeaveID)
			if err := tx.Model(&attModel.StudentAttendanceModel{}).
				Where("student_attendance_student_id = ?", m.StudentLeaveStudentID).
				Where("student_attendance_status = ?", attModel.AttendanceStatusOnLeave).
				Where("student_attendance_remarks = ?", leaveRemark(m.StudentLeaveID)).
				Updates(map[string]interface{}{
					"student_attendance_status":     attModel.AttendanceStatusAbsent,
					"student_attendance_remarks":    cancelled,
					"student_attendance_updated_at": time.Now(),
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

func (h *StudentLeaveController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	q := h.DB.WithContext(c.Context()).
		Preload("StudentLeaveHistories", func(db *gorm.DB) *gorm.DB {
			return db.Order("student_leave_status_history_created_at")
		}).
		Where("student_leave_student_id = ?", studentID)
	if status := c.Query("status"); status != "" {
		q = q.Where("student_leave_status = ?", status)
	}

	var rows []attModel.StudentLeaveModel
	if err := q.Order("student_leave_start_date DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil cuti")
	}
	return helper.Success(c, "OK", rows)
}
