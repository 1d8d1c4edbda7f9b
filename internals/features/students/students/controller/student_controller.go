// file: internals/features/students/students/controller/student_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	offeringModel "sekolahku_backend/internals/features/academics/subjects/model"
	admissionModel "sekolahku_backend/internals/features/students/admissions/model"
	admissionService "sekolahku_backend/internals/features/students/admissions/service"
	attendanceModel "sekolahku_backend/internals/features/students/attendance/model"
	enrollmentModel "sekolahku_backend/internals/features/students/enrollments/model"
	studentDTO "sekolahku_backend/internals/features/students/students/dto"
	studentModel "sekolahku_backend/internals/features/students/students/model"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

type StudentController struct {
	DB *gorm.DB
}

var validate = validator.New()

/*
=========================================================

	CREATE
	POST /students

	Satu transaksi: siswa + detail-detail + kredensial (opsional)
	+ admission & enrollment default (kalau class_id diisi).

=========================================================
*/
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// 1) kredensial login (opsional) — password di-hash, tidak pernah
		//    kembali di response
		if req.Credential != nil {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(req.Credential.Password), bcrypt.DefaultCost)
			if hashErr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
			}
			user := &userModel.UserModel{
				UserEmail:        req.Credential.Email,
				UserPasswordHash: string(hash),
				UserRole:         userModel.RoleStudent,
			}
			if err := tx.Create(user).Error; err != nil {
				if helper.IsUniqueViolation(err) {
					return fiber.NewError(fiber.StatusConflict, "Email login sudah dipakai")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kredensial")
			}
			m.StudentUserID = &user.UserID
		}

		// 2) siswa
		if err := tx.Create(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat siswa")
		}

		// 3) detail one-to-one yang dikirim
		if req.Detail != nil {
			if err := tx.Create(req.Detail.ToModel(m.StudentID)).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan detail siswa")
			}
		}
		if req.FamilyDetail != nil {
			if err := tx.Create(req.FamilyDetail.ToModel(m.StudentID)).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan detail keluarga")
			}
		}
		if req.PreviousAcademic != nil {
			if err := tx.Create(req.PreviousAcademic.ToModel(m.StudentID)).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan riwayat akademik")
			}
		}
		if req.PaymentDetail != nil {
			if err := tx.Create(req.PaymentDetail.ToModel(m.StudentID)).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan detail pembayaran")
			}
		}
		if req.HostelDetail != nil {
			if err := tx.Create(req.HostelDetail.ToModel(m.StudentID)).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan detail asrama")
			}
		}
		if req.FacilityFlags != nil {
			facility, fErr := studentDTO.FacilityFlagsToModel(m.StudentID, req.FacilityFlags)
			if fErr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Flag fasilitas tidak valid")
			}
			if err := tx.Create(facility).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan fasilitas")
			}
		}
		if len(req.Addresses) > 0 {
			rows := studentDTO.BuildAddresses(m.StudentID, req.Addresses)
			if err := tx.Create(&rows).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan alamat")
			}
		}
		if len(req.Documents) > 0 {
			rows := studentDTO.BuildDocuments(m.StudentID, req.Documents)
			if err := tx.Create(&rows).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
			}
		}

		// 4) admission + enrollment default (opsional)
		if req.ClassID != nil {
			var class classModel.ClassModel
			if err := tx.First(&class, "class_id = ?", *req.ClassID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
			}

			var admitted int64
			if err := tx.Model(&admissionModel.AdmissionModel{}).
				Where("admission_class_id = ?", class.ClassID).
				Count(&admitted).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek admission")
			}
			if v := admissionService.CheckCapacity(class.ClassCapacity, int(admitted), 1); v != nil {
				return fiber.NewError(fiber.StatusConflict, v.Error())
			}

			nums := admissionService.GenerateAdmissionNumbers(1, time.Now())
			admission := &admissionModel.AdmissionModel{
				AdmissionStudentID: m.StudentID,
				AdmissionClassID:   class.ClassID,
				AdmissionNumber:    nums[0].AdmissionNumber,
				AdmissionGRNumber:  nums[0].GRNumber,
				AdmissionDate:      datatypes.Date(dbtime.DayUTC(time.Now())),
			}
			if err := tx.Create(admission).Error; err != nil {
				if helper.IsUniqueViolation(err) {
					return fiber.NewError(fiber.StatusConflict, "Nomor admission bentrok, coba lagi")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat admission")
			}

			// enrollment default ke semua offering kelas
			var offerings []offeringModel.CourseOfferingModel
			if err := tx.Where("course_offering_class_id = ?", class.ClassID).
				Find(&offerings).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offering")
			}
			if len(offerings) > 0 {
				rows := make([]enrollmentModel.StudentCourseEnrollmentModel, 0, len(offerings))
				for _, off := range offerings {
					rows = append(rows, enrollmentModel.StudentCourseEnrollmentModel{
						EnrollmentStudentID:        m.StudentID,
						EnrollmentCourseOfferingID: off.CourseOfferingID,
						EnrollmentStatus:           enrollmentModel.EnrollmentStatusEnrolled,
					})
				}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&rows).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat enrollment")
				}
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa dibuat", m)
}

func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("student_first_name ILIKE ? OR student_last_name ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var rows []studentModel.StudentModel
	if err := q.Order("student_first_name, student_last_name").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).
		Preload("StudentDetail").
		Preload("StudentFamilyDetail").
		Preload("StudentPreviousAcademic").
		Preload("StudentPaymentDetail").
		Preload("StudentHostelDetail").
		Preload("StudentFacility").
		Preload("StudentAddresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("student_address_order")
		}).
		Preload("StudentDocuments").
		First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	return helper.Success(c, "OK", m)
}

/*
=========================================================

	UPDATE
	PATCH /students/:id

	Detail one-to-one di-upsert: create kalau belum ada,
	update kalau sudah — key unik per student.

=========================================================
*/
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Status != nil && !studentModel.IsValidStudentStatus(*req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Status siswa tidak dikenal")
	}

	var m studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "student_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
		}
		if err := req.ApplyTo(&m); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan siswa")
		}

		if req.Detail != nil {
			if err := upsertOneToOne(tx, req.Detail.ToModel(id), "student_detail_student_id",
				[]string{"student_detail_aadhaar_number", "student_detail_blood_group",
					"student_detail_nationality", "student_detail_religion",
					"student_detail_caste", "student_detail_mother_tongue",
					"student_detail_updated_at"}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan detail siswa")
			}
		}
		if req.FamilyDetail != nil {
			if err := upsertOneToOne(tx, req.FamilyDetail.ToModel(id), "student_family_detail_student_id",
				[]string{"student_family_detail_father_name", "student_family_detail_father_phone",
					"student_family_detail_father_occupation", "student_family_detail_mother_name",
					"student_family_detail_mother_phone", "student_family_detail_guardian_name",
					"student_family_detail_guardian_phone", "student_family_detail_updated_at"}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan detail keluarga")
			}
		}
		if req.PreviousAcademic != nil {
			if err := upsertOneToOne(tx, req.PreviousAcademic.ToModel(id), "student_previous_academic_student_id",
				[]string{"student_previous_academic_school_name", "student_previous_academic_last_standard",
					"student_previous_academic_percentage", "student_previous_academic_passing_year",
					"student_previous_academic_updated_at"}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan riwayat akademik")
			}
		}
		if req.PaymentDetail != nil {
			if err := upsertOneToOne(tx, req.PaymentDetail.ToModel(id), "student_payment_detail_student_id",
				[]string{"student_payment_detail_bank_name", "student_payment_detail_account_number",
					"student_payment_detail_ifsc_code", "student_payment_detail_fee_category",
					"student_payment_detail_updated_at"}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan detail pembayaran")
			}
		}
		if req.HostelDetail != nil {
			if err := upsertOneToOne(tx, req.HostelDetail.ToModel(id), "student_hostel_detail_student_id",
				[]string{"student_hostel_detail_hostel_name", "student_hostel_detail_room_number",
					"student_hostel_detail_warden_name", "student_hostel_detail_updated_at"}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan detail asrama")
			}
		}
		if req.FacilityFlags != nil {
			facility, fErr := studentDTO.FacilityFlagsToModel(id, req.FacilityFlags)
			if fErr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Flag fasilitas tidak valid")
			}
			if err := upsertOneToOne(tx, facility, "student_facility_student_id",
				[]string{"student_facility_flags", "student_facility_updated_at"}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan fasilitas")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Siswa diperbarui", m)
}

// upsertOneToOne: insert-or-update dengan conflict key kolom student FK.
func upsertOneToOne(tx *gorm.DB, row interface{}, conflictColumn string, updateColumns []string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: conflictColumn}},
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(row).Error
}

func (h *StudentController) AddDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req studentDTO.StudentDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var studentCount int64
	if err := h.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{}).
		Where("student_id = ?", id).
		Count(&studentCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek siswa")
	}
	if studentCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	rows := studentDTO.BuildDocuments(id, []studentDTO.StudentDocumentRequest{req})
	if err := h.DB.WithContext(c.Context()).Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah dokumen")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Dokumen ditambahkan", rows[0])
}

/*
=========================================================

	DELETE
	Cascade ke semua anak: detail, alamat, dokumen, admission,
	enrollment, attendance, leave + history — satu transaksi.

=========================================================
*/
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var m studentModel.StudentModel
		if err := tx.First(&m, "student_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
		}

		// history leave dulu (anak paling dalam)
		var leaveIDs []uuid.UUID
		if err := tx.Model(&attendanceModel.StudentLeaveModel{}).
			Where("student_leave_student_id = ?", id).
			Pluck("student_leave_id", &leaveIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil leave")
		}
		if len(leaveIDs) > 0 {
			if err := tx.Where("student_leave_status_history_leave_id IN ?", leaveIDs).
				Delete(&attendanceModel.StudentLeaveStatusHistoryModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus history leave")
			}
		}

		children := []interface{}{
			&attendanceModel.StudentLeaveModel{},
			&attendanceModel.StudentAttendanceModel{},
			&enrollmentModel.StudentCourseEnrollmentModel{},
			&admissionModel.AdmissionModel{},
			&studentModel.StudentDocumentModel{},
			&studentModel.StudentAddressModel{},
			&studentModel.StudentFacilityModel{},
			&studentModel.StudentHostelDetailModel{},
			&studentModel.StudentPaymentDetailModel{},
			&studentModel.StudentPreviousAcademicModel{},
			&studentModel.StudentFamilyDetailModel{},
			&studentModel.StudentDetailModel{},
		}
		columns := []string{
			"student_leave_student_id",
			"student_attendance_student_id",
			"enrollment_student_id",
			"admission_student_id",
			"student_document_student_id",
			"student_address_student_id",
			"student_facility_student_id",
			"student_hostel_detail_student_id",
			"student_payment_detail_student_id",
			"student_previous_academic_student_id",
			"student_family_detail_student_id",
			"student_detail_student_id",
		}
		for i, child := range children {
			if err := tx.Unscoped().Where(columns[i]+" = ?", id).Delete(child).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data anak siswa")
			}
		}

		if err := tx.Unscoped().Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus siswa")
		}

		// kredensial ikut terhapus
		if m.StudentUserID != nil {
			if err := tx.Unscoped().
				Delete(&userModel.UserModel{}, "user_id = ?", *m.StudentUserID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kredensial")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Siswa dihapus", nil)
}
