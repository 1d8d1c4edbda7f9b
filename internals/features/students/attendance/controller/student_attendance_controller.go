// file: internals/features/students/attendance/controller/student_attendance_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attDTO "sekolahku_backend/internals/features/students/attendance/dto"
	attModel "sekolahku_backend/internals/features/students/attendance/model"
	studentModel "sekolahku_backend/internals/features/students/students/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

type StudentAttendanceController struct {
	DB *gorm.DB
}

var validate = validator.New()

// upsertAttendanceRows: insert-or-update pada key (siswa, tanggal).
// Baris lama ditimpa status/remarks/source-nya, identitas tetap.
func upsertAttendanceRows(tx *gorm.DB, rows []attModel.StudentAttendanceModel) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_attendance_student_id"},
			{Name: "student_attendance_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_attendance_status",
			"student_attendance_remarks",
			"student_attendance_source",
			"student_attendance_updated_at",
		}),
	}).Create(&rows).Error
}

func (h *StudentAttendanceController) Upsert(c *fiber.Ctx) error {
	var req attDTO.UpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !attModel.IsValidAttendanceStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Status kehadiran tidak dikenal")
	}
	day, err := dbtime.ParseDay(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var studentCount int64
	if err := h.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.StudentID).
		Count(&studentCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek siswa")
	}
	if studentCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	rows := []attModel.StudentAttendanceModel{{
		StudentAttendanceStudentID: req.StudentID,
		StudentAttendanceDate:      datatypes.Date(day),
		StudentAttendanceStatus:    req.Status,
		StudentAttendanceRemarks:   req.Remarks,
		StudentAttendanceSource:    attModel.AttendanceSourceManual,
	}}
	if err := upsertAttendanceRows(h.DB.WithContext(c.Context()), rows); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}
	return helper.Success(c, "Kehadiran disimpan", rows[0])
}

// UpsertBatch: satu tanggal untuk banyak siswa, satu transaksi.
// Siswa yang tidak ada membuat seluruh batch gagal.
func (h *StudentAttendanceController) UpsertBatch(c *fiber.Ctx) error {
	var req attDTO.BatchAttendanceRequest
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
		if !attModel.IsValidAttendanceStatus(e.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Status kehadiran tidak dikenal")
		}
	}

	ids := make([]uuid.UUID, 0, len(req.Entries))
	for _, e := range req.Entries {
		ids = append(ids, e.StudentID)
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var studentCount int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_id IN ?", ids).
			Count(&studentCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek siswa")
		}
		if int(studentCount) != len(uniqueIDs(ids)) {
			return fiber.NewError(fiber.StatusNotFound, "Ada siswa yang tidak ditemukan")
		}

		rows := make([]attModel.StudentAttendanceModel, 0, len(req.Entries))
		for _, e := range req.Entries {
			rows = append(rows, attModel.StudentAttendanceModel{
				StudentAttendanceStudentID: e.StudentID,
				StudentAttendanceDate:      datatypes.Date(day),
				StudentAttendanceStatus:    e.Status,
				StudentAttendanceRemarks:   e.Remarks,
				StudentAttendanceSource:    attModel.AttendanceSourceManualBulk,
			})
		}
		if err := upsertAttendanceRows(tx, rows); err != nil {
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

// UpsertRange: satu siswa, satu baris per hari kalender (inklusif).
func (h *StudentAttendanceController) UpsertRange(c *fiber.Ctx) error {
	var req attDTO.RangeAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !attModel.IsValidAttendanceStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Status kehadiran tidak dikenal")
	}
	start, err := dbtime.ParseDay(req.StartDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	end, err := dbtime.ParseDay(req.EndDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	days, err := dbtime.ExpandDays(start, end)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
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

		rows := make([]attModel.StudentAttendanceModel, 0, len(days))
		for _, d := range days {
			rows = append(rows, attModel.StudentAttendanceModel{
				StudentAttendanceStudentID: req.StudentID,
				StudentAttendanceDate:      datatypes.Date(d),
				StudentAttendanceStatus:    req.Status,
				StudentAttendanceRemarks:   req.Remarks,
				StudentAttendanceSource:    attModel.AttendanceSourceManual,
			})
		}
		if err := upsertAttendanceRows(tx, rows); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Kehadiran rentang disimpan", fiber.Map{
		"days": len(days),
	})
}

func (h *StudentAttendanceController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	q := h.DB.WithContext(c.Context()).
		Where("student_attendance_student_id = ?", studentID)
	if from := c.Query("from"); from != "" {
		d, parseErr := dbtime.ParseDay(from)
		if parseErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, parseErr.Error())
		}
		q = q.Where("student_attendance_date >= ?", datatypes.Date(d))
	}
	if to := c.Query("to"); to != "" {
		d, parseErr := dbtime.ParseDay(to)
		if parseErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, parseErr.Error())
		}
		q = q.Where("student_attendance_date <= ?", datatypes.Date(d))
	}

	var rows []attModel.StudentAttendanceModel
	if err := q.Order("student_attendance_date").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}
	return helper.Success(c, "OK", rows)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
