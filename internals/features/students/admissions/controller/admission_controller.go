// file: internals/features/students/admissions/controller/admission_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	offeringModel "sekolahku_backend/internals/features/academics/subjects/model"
	admissionDTO "sekolahku_backend/internals/features/students/admissions/dto"
	admissionModel "sekolahku_backend/internals/features/students/admissions/model"
	admissionService "sekolahku_backend/internals/features/students/admissions/service"
	enrollmentModel "sekolahku_backend/internals/features/students/enrollments/model"
	studentModel "sekolahku_backend/internals/features/students/students/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

type AdmissionController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	ADMIT BATCH
	POST /admissions/admit

	Satu transaksi: cek kapasitas + duplikat tahun ajaran,
	generate nomor ADM/GR, insert admission + enrollment
	default ke semua offering kelas.

=========================================================
*/
func (h *AdmissionController) AdmitStudents(c *fiber.Ctx) error {
	var req admissionDTO.AdmitStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	studentIDs := admissionService.DedupStudentIDs(req.StudentIDs)

	var created []admissionModel.AdmissionModel
	var enrolled int64

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var class classModel.ClassModel
		if err := tx.First(&class, "class_id = ?", req.ClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
		}

		// semua siswa harus ada
		var studentCount int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_id IN ?", studentIDs).
			Count(&studentCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek siswa")
		}
		if int(studentCount) != len(studentIDs) {
			return fiber.NewError(fiber.StatusNotFound, "Ada siswa yang tidak ditemukan")
		}

		// kapasitas
		var current int64
		if err := tx.Model(&admissionModel.AdmissionModel{}).
			Where("admission_class_id = ?", class.ClassID).
			Count(&current).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek admission")
		}
		if v := admissionService.CheckCapacity(class.ClassCapacity, int(current), len(studentIDs)); v != nil {
			return fiber.NewError(fiber.StatusConflict, v.Error())
		}

		// duplikat di tahun ajaran yang sama (lewat join ke classes)
		var alreadyAdmitted []uuid.UUID
		if err := tx.Model(&admissionModel.AdmissionModel{}).
			Joins("JOIN classes ON classes.class_id = admissions.admission_class_id").
			Where("classes.class_academic_year_id = ?", class.ClassAcademicYearID).
			Where("admissions.admission_student_id IN ?", studentIDs).
			Pluck("admissions.admission_student_id", &alreadyAdmitted).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikat admission")
		}
		if v := admissionService.CheckNoDuplicateAdmission(studentIDs, alreadyAdmitted); v != nil {
			return fiber.NewError(fiber.StatusConflict, v.Error())
		}

		nums := admissionService.GenerateAdmissionNumbers(len(studentIDs), time.Now())
		today := datatypes.Date(dbtime.DayUTC(time.Now()))
		created = make([]admissionModel.AdmissionModel, 0, len(studentIDs))
		for i, sid := range studentIDs {
			created = append(created, admissionModel.AdmissionModel{
				AdmissionStudentID: sid,
				AdmissionClassID:   class.ClassID,
				AdmissionNumber:    nums[i].AdmissionNumber,
				AdmissionGRNumber:  nums[i].GRNumber,
				AdmissionDate:      today,
			})
		}
		if err := tx.Create(&created).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Nomor admission bentrok, coba lagi")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat admission")
		}

		// enrollment default: semua offering kelas × semua siswa batch
		var offeringIDs []uuid.UUID
		if err := tx.Model(&offeringModel.CourseOfferingModel{}).
			Where("course_offering_class_id = ?", class.ClassID).
			Pluck("course_offering_id", &offeringIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offering")
		}
		if len(offeringIDs) > 0 {
			rows := make([]enrollmentModel.StudentCourseEnrollmentModel, 0, len(offeringIDs)*len(studentIDs))
			for _, sid := range studentIDs {
				for _, oid := range offeringIDs {
					rows = append(rows, enrollmentModel.StudentCourseEnrollmentModel{
						EnrollmentStudentID:        sid,
						EnrollmentCourseOfferingID: oid,
						EnrollmentStatus:           enrollmentModel.EnrollmentStatusEnrolled,
					})
				}
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat enrollment")
			}
			enrolled = res.RowsAffected
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa diterima", fiber.Map{
		"admissions":          created,
		"enrollments_created": enrolled,
	})
}

/*
=========================================================

	PROMOTE BATCH
	POST /admissions/promote

	Kelas asal tiap siswa diturunkan dari admission terbarunya,
	jadi batch boleh menyeberang beberapa kelas asal. Admission
	di-repoint ke kelas tujuan (nomor ADM/GR tetap), enrollment
	kelas-kelas asal dihapus lalu dibuat ulang ke offering
	kelas tujuan — satu transaksi.

=========================================================
*/
func (h *AdmissionController) PromoteStudents(c *fiber.Ctx) error {
	var req admissionDTO.PromoteStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	studentIDs := admissionService.DedupStudentIDs(req.StudentIDs)

	var promoted int64
	var enrollCreated, enrollRemoved int64

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var toClass classModel.ClassModel
		if err := tx.First(&toClass, "class_id = ?", req.ToClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kelas tujuan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas tujuan")
		}

		// seluruh riwayat admission siswa batch — planner memilih yang terbaru
		// per siswa; urutan created_at jadi tie-break kalau tanggalnya sama
		var history []admissionModel.AdmissionModel
		if err := tx.Where("admission_student_id IN ?", studentIDs).
			Order("admission_created_at").
			Find(&history).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil admission")
		}
		refs := make([]admissionService.AdmissionRef, 0, len(history))
		for _, a := range history {
			refs = append(refs, admissionService.AdmissionRef{
				AdmissionID: a.AdmissionID,
				StudentID:   a.AdmissionStudentID,
				ClassID:     a.AdmissionClassID,
				AdmittedAt:  time.Time(a.AdmissionDate),
			})
		}
		plan, pv := admissionService.PlanPromotion(studentIDs, refs, toClass.ClassID)
		if pv != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, pv.Error())
		}

		// kapasitas kelas tujuan
		var current int64
		if err := tx.Model(&admissionModel.AdmissionModel{}).
			Where("admission_class_id = ?", toClass.ClassID).
			Count(&current).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek admission tujuan")
		}
		if v := admissionService.CheckCapacity(toClass.ClassCapacity, int(current), len(studentIDs)); v != nil {
			return fiber.NewError(fiber.StatusConflict, v.Error())
		}

		// duplikat di tahun ajaran tujuan — admission yang sedang dipindah
		// dikecualikan dari cek
		var alreadyAdmitted []uuid.UUID
		if err := tx.Model(&admissionModel.AdmissionModel{}).
			Joins("JOIN classes ON classes.class_id = admissions.admission_class_id").
			Where("classes.class_academic_year_id = ?", toClass.ClassAcademicYearID).
			Where("admissions.admission_student_id IN ?", studentIDs).
			Where("admissions.admission_id NOT IN ?", plan.AdmissionIDs).
			Pluck("admissions.admission_student_id", &alreadyAdmitted).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikat admission")
		}
		if v := admissionService.CheckNoDuplicateAdmission(studentIDs, alreadyAdmitted); v != nil {
			return fiber.NewError(fiber.StatusConflict, v.Error())
		}

		// repoint admission ke kelas tujuan, roll number direset
		res := tx.Model(&admissionModel.AdmissionModel{}).
			Where("admission_id IN ?", plan.AdmissionIDs).
			Updates(map[string]interface{}{
				"admission_class_id":    toClass.ClassID,
				"admission_roll_number": nil,
				"admission_updated_at":  time.Now(),
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memindahkan admission")
		}
		promoted = res.RowsAffected

		// enrollment lama (offering semua kelas asal) dibuang
		var fromOfferingIDs []uuid.UUID
		if err := tx.Model(&offeringModel.CourseOfferingModel{}).
			Where("course_offering_class_id IN ?", plan.PriorClassIDs).
			Pluck("course_offering_id", &fromOfferingIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offering asal")
		}
		if len(fromOfferingIDs) > 0 {
			res := tx.Unscoped().
				Where("enrollment_student_id IN ?", studentIDs).
				Where("enrollment_course_offering_id IN ?", fromOfferingIDs).
				Delete(&enrollmentModel.StudentCourseEnrollmentModel{})
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus enrollment lama")
			}
			enrollRemoved = res.RowsAffected
		}

		// enrollment baru ke offering kelas tujuan
		var toOfferingIDs []uuid.UUID
		if err := tx.Model(&offeringModel.CourseOfferingModel{}).
			Where("course_offering_class_id = ?", toClass.ClassID).
			Pluck("course_offering_id", &toOfferingIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offering tujuan")
		}
		if len(toOfferingIDs) > 0 {
			rows := make([]enrollmentModel.StudentCourseEnrollmentModel, 0, len(toOfferingIDs)*len(studentIDs))
			for _, sid := range studentIDs {
				for _, oid := range toOfferingIDs {
					rows = append(rows, enrollmentModel.StudentCourseEnrollmentModel{
						EnrollmentStudentID:        sid,
						EnrollmentCourseOfferingID: oid,
						EnrollmentStatus:           enrollmentModel.EnrollmentStatusEnrolled,
					})
				}
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat enrollment baru")
			}
			enrollCreated = res.RowsAffected
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Promosi selesai", fiber.Map{
		"promoted_count":      promoted,
		"enrollments_created": enrollCreated,
		"enrollments_removed": enrollRemoved,
	})
}

func (h *AdmissionController) ListByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var rows []admissionModel.AdmissionModel
	if err := h.DB.WithContext(c.Context()).
		Where("admission_class_id = ?", classID).
		Order("admission_roll_number NULLS LAST, admission_number").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil admission")
	}
	return helper.Success(c, "OK", rows)
}

func (h *AdmissionController) UpdateRollNumber(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req admissionDTO.UpdateRollNumberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m admissionModel.AdmissionModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "admission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Admission tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil admission")
	}

	m.AdmissionRollNumber = req.RollNumber
	m.AdmissionUpdatedAt = time.Now()
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan admission")
	}
	return helper.Success(c, "Roll number diperbarui", m)
}
