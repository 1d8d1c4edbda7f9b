// file: internals/features/academics/subjects/controller/course_offering_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	yearModel "sekolahku_backend/internals/features/academics/academic_years/model"
	classModel "sekolahku_backend/internals/features/academics/classes/model"
	subjectDTO "sekolahku_backend/internals/features/academics/subjects/dto"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	subjectService "sekolahku_backend/internals/features/academics/subjects/service"
	employeeModel "sekolahku_backend/internals/features/employees/employees/model"
	enrollmentModel "sekolahku_backend/internals/features/students/enrollments/model"
	helper "sekolahku_backend/internals/helpers"
)

type CourseOfferingController struct {
	DB *gorm.DB
}

/*
=========================================================

	SYNC OFFERINGS
	POST /subjects/:id/offerings/sync

	Rekonsiliasi penawaran subject terhadap (standard × sections)
	tahun ajaran aktif, tanpa membuang data enrollment hidup.

=========================================================
*/
func (h *CourseOfferingController) SyncOfferings(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req subjectDTO.SyncOfferingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var subject subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil subject")
		}

		// guru (opsional) harus ada & aktif
		if req.TeacherID != nil {
			var teacherCount int64
			if err := tx.Model(&employeeModel.EmployeeModel{}).
				Where("employee_id = ?", *req.TeacherID).
				Count(&teacherCount).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek guru")
			}
			if teacherCount == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
			}
		}

		// tahun ajaran aktif wajib ada
		var year yearModel.AcademicYearModel
		if err := tx.First(&year, "academic_year_is_active = TRUE").Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Tidak ada tahun ajaran aktif")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran aktif")
		}

		// target: kelas untuk (standard × sections) di tahun aktif
		targetClassIDs := make([]uuid.UUID, 0, len(req.Sections))
		for _, section := range req.Sections {
			var class classModel.ClassModel
			if err := tx.
				Where("class_academic_year_id = ? AND class_standard = ? AND class_section = ?",
					year.AcademicYearID, req.Standard, section).
				First(&class).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound,
						fmt.Sprintf("Kelas standard %s section %s tidak ditemukan", req.Standard, section))
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
			}
			targetClassIDs = append(targetClassIDs, class.ClassID)
		}

		// existing: semua offering subject ini
		var existing []subjectModel.CourseOfferingModel
		if err := tx.Where("course_offering_subject_id = ?", subjectID).
			Find(&existing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offering")
		}
		existingByClass := make(map[uuid.UUID]uuid.UUID, len(existing))
		for _, off := range existing {
			existingByClass[off.CourseOfferingClassID] = off.CourseOfferingID
		}

		plan := subjectService.PartitionOfferings(existingByClass, targetClassIDs)

		// Guard: offering yang mau dihapus tidak boleh punya enrollment hidup.
		if len(plan.ToDelete) > 0 {
			var enrolled int64
			if err := tx.Model(&enrollmentModel.StudentCourseEnrollmentModel{}).
				Where("enrollment_course_offering_id IN ? AND enrollment_status = ?",
					plan.ToDelete, enrollmentModel.EnrollmentStatusEnrolled).
				Count(&enrolled).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek enrollment")
			}
			if enrolled > 0 {
				return fiber.NewError(fiber.StatusConflict,
					fmt.Sprintf("Tidak bisa menarik subject dari section: masih ada %d siswa ter-enroll", enrolled))
			}

			// hapus material dulu, lalu offering
			if err := tx.Where("course_material_offering_id IN ?", plan.ToDelete).
				Delete(&subjectModel.CourseMaterialModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus material")
			}
			if err := tx.Where("course_offering_id IN ?", plan.ToDelete).
				Delete(&subjectModel.CourseOfferingModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus offering")
			}
		}

		// refresh guru & flag untuk yang bertahan
		if len(plan.ToUpdate) > 0 {
			if err := tx.Model(&subjectModel.CourseOfferingModel{}).
				Where("course_offering_id IN ?", plan.ToUpdate).
				Updates(map[string]interface{}{
					"course_offering_teacher_id":   req.TeacherID,
					"course_offering_is_mandatory": req.IsMandatory,
				}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui offering")
			}
		}

		// buat yang baru
		if len(plan.ToCreate) > 0 {
			rows := make([]subjectModel.CourseOfferingModel, 0, len(plan.ToCreate))
			for _, classID := range plan.ToCreate {
				rows = append(rows, subjectModel.CourseOfferingModel{
					CourseOfferingClassID:     classID,
					CourseOfferingSubjectID:   subjectID,
					CourseOfferingTeacherID:   req.TeacherID,
					CourseOfferingIsMandatory: req.IsMandatory,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				if helper.IsUniqueViolation(err) {
					return fiber.NewError(fiber.StatusConflict, "Offering ganda untuk kombinasi kelas+subject")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat offering")
			}
		}

		// subject mengikuti standard target
		if subject.SubjectStandard != req.Standard {
			if err := tx.Model(&subject).
				Update("subject_standard", req.Standard).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan subject")
			}
			subject.SubjectStandard = req.Standard
		}
		return nil
	}); err != nil {
		return err
	}

	var offerings []subjectModel.CourseOfferingModel
	if err := h.DB.WithContext(c.Context()).
		Where("course_offering_subject_id = ?", subjectID).
		Find(&offerings).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offering")
	}

	return helper.Success(c, "Offering disinkronkan", fiber.Map{
		"subject":   subject,
		"offerings": offerings,
	})
}

// ListByClass: semua offering sebuah kelas (dipakai form timetable & enroll).
func (h *CourseOfferingController) ListByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var rows []subjectModel.CourseOfferingModel
	if err := h.DB.WithContext(c.Context()).
		Where("course_offering_class_id = ?", classID).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offering")
	}
	return helper.Success(c, "OK", rows)
}

/* ===================== COURSE MATERIALS ===================== */

func (h *CourseOfferingController) AddMaterial(c *fiber.Ctx) error {
	offeringID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req subjectDTO.CreateCourseMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var offeringCount int64
	if err := h.DB.WithContext(c.Context()).Model(&subjectModel.CourseOfferingModel{}).
		Where("course_offering_id = ?", offeringID).
		Count(&offeringCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek offering")
	}
	if offeringCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Offering tidak ditemukan")
	}

	m := req.ToModel(offeringID)
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah material")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Material ditambahkan", m)
}

func (h *CourseOfferingController) ListMaterials(c *fiber.Ctx) error {
	offeringID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var rows []subjectModel.CourseMaterialModel
	if err := h.DB.WithContext(c.Context()).
		Where("course_material_offering_id = ?", offeringID).
		Order("course_material_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil material")
	}
	return helper.Success(c, "OK", rows)
}

func (h *CourseOfferingController) DeleteMaterial(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("material_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.Context()).
		Delete(&subjectModel.CourseMaterialModel{}, "course_material_id = ?", materialID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus material")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Material tidak ditemukan")
	}
	return helper.Success(c, "Material dihapus", nil)
}
