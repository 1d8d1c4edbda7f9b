// file: internals/features/employees/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	empAttModel "sekolahku_backend/internals/features/employees/attendance/model"
	empDTO "sekolahku_backend/internals/features/employees/employees/dto"
	empModel "sekolahku_backend/internals/features/employees/employees/model"
	leaveModel "sekolahku_backend/internals/features/employees/leaves/model"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	helper "sekolahku_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

var validate = validator.New()

// Kode pegawai dibangkitkan server, pola stempel waktu — unik dijaga
// constraint, bentrok jarang dan di-retry pemanggil.
func newEmployeeCode(now time.Time) string {
	return fmt.Sprintf("EMP-%s", now.UTC().Format("20060102150405.000"))
}

func (h *EmployeeController) Create(c *fiber.Ctx) error {
	var req empDTO.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !empModel.IsValidEmployeeRole(req.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "Role pegawai tidak dikenal")
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	m.EmployeeCode = newEmployeeCode(time.Now())

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var deptCount int64
		if err := tx.Model(&empModel.DepartmentModel{}).
			Where("department_id = ?", req.DepartmentID).
			Count(&deptCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek departemen")
		}
		if deptCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Departemen tidak ditemukan")
		}

		if req.Credential != nil {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(req.Credential.Password), bcrypt.DefaultCost)
			if hashErr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
			}
			user := &userModel.UserModel{
				UserEmail:        req.Credential.Email,
				UserPasswordHash: string(hash),
				UserRole:         userModel.RoleEmployee,
			}
			if err := tx.Create(user).Error; err != nil {
				if helper.IsUniqueViolation(err) {
					return fiber.NewError(fiber.StatusConflict, "Email login sudah dipakai")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kredensial")
			}
			m.EmployeeUserID = &user.UserID
		}

		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Email atau kode pegawai sudah dipakai")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pegawai")
		}

		if req.Salary != nil {
			salary, sErr := req.Salary.ToModel(m.EmployeeID)
			if sErr != nil {
				return fiber.NewError(fiber.StatusBadRequest, sErr.Error())
			}
			if err := tx.Create(salary).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan gaji")
			}
		}
		if len(req.Documents) > 0 {
			rows := make([]empModel.EmployeeDocumentModel, 0, len(req.Documents))
			for _, d := range req.Documents {
				rows = append(rows, empModel.EmployeeDocumentModel{
					EmployeeDocumentEmployeeID: m.EmployeeID,
					EmployeeDocumentName:       d.Name,
					EmployeeDocumentFileURL:    d.FileURL,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pegawai dibuat", m)
}

func (h *EmployeeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&empModel.EmployeeModel{})
	if deptID := c.Query("department_id"); deptID != "" {
		if id, parseErr := uuid.Parse(deptID); parseErr == nil {
			q = q.Where("employee_department_id = ?", id)
		}
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("employee_role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("employee_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pegawai")
	}

	var rows []empModel.EmployeeModel
	if err := q.Order("employee_first_name, employee_last_name").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pegawai")
	}

	return helper.Success(c, "OK", fiber.Map{
		"employees":  rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (h *EmployeeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m empModel.EmployeeModel
	if err := h.DB.WithContext(c.Context()).
		Preload("EmployeeSalaries", func(db *gorm.DB) *gorm.DB {
			return db.Order("employee_salary_effective_from DESC")
		}).
		Preload("EmployeeDocuments").
		First(&m, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pegawai")
	}
	return helper.Success(c, "OK", m)
}

func (h *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req empDTO.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Role != nil && !empModel.IsValidEmployeeRole(*req.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "Role pegawai tidak dikenal")
	}
	if req.Status != nil && !empModel.IsValidEmployeeStatus(*req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Status pegawai tidak dikenal")
	}

	var m empModel.EmployeeModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "employee_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pegawai")
		}
		if req.DepartmentID != nil {
			var deptCount int64
			if err := tx.Model(&empModel.DepartmentModel{}).
				Where("department_id = ?", *req.DepartmentID).
				Count(&deptCount).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek departemen")
			}
			if deptCount == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Departemen tidak ditemukan")
			}
		}
		if err := req.ApplyTo(&m); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pegawai")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Pegawai diperbarui", m)
}

// AddSalary menambah entri riwayat gaji baru (append, bukan replace).
func (h *EmployeeController) AddSalary(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req empDTO.EmployeeSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var employeeCount int64
	if err := h.DB.WithContext(c.Context()).Model(&empModel.EmployeeModel{}).
		Where("employee_id = ?", id).
		Count(&employeeCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pegawai")
	}
	if employeeCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}

	salary, sErr := req.ToModel(id)
	if sErr != nil {
		return fiber.NewError(fiber.StatusBadRequest, sErr.Error())
	}
	if err := h.DB.WithContext(c.Context()).Create(salary).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan gaji")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gaji ditambahkan", salary)
}

// UpdateLatestSalary merevisi entri gaji terbaru tanpa menambah riwayat —
// dipakai untuk koreksi salah input, bukan kenaikan gaji.
func (h *EmployeeController) UpdateLatestSalary(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req empDTO.EmployeeSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	revised, sErr := req.ToModel(id)
	if sErr != nil {
		return fiber.NewError(fiber.StatusBadRequest, sErr.Error())
	}

	var latest empModel.EmployeeSalaryModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_salary_employee_id = ?", id).
			Order("employee_salary_effective_from DESC").
			First(&latest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pegawai belum punya riwayat gaji")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil gaji")
		}
		latest.EmployeeSalaryBasic = revised.EmployeeSalaryBasic
		latest.EmployeeSalaryAllowances = revised.EmployeeSalaryAllowances
		latest.EmployeeSalaryDeductions = revised.EmployeeSalaryDeductions
		latest.EmployeeSalaryEffectiveFrom = revised.EmployeeSalaryEffectiveFrom
		if err := tx.Save(&latest).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan gaji")
		}
		return nil
	}); err != nil {
		return err
	}
	return helper.Success(c, "Gaji terbaru diperbarui", latest)
}

func (h *EmployeeController) AddDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req empDTO.EmployeeDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var employeeCount int64
	if err := h.DB.WithContext(c.Context()).Model(&empModel.EmployeeModel{}).
		Where("employee_id = ?", id).
		Count(&employeeCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pegawai")
	}
	if employeeCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}

	doc := &empModel.EmployeeDocumentModel{
		EmployeeDocumentEmployeeID: id,
		EmployeeDocumentName:       req.Name,
		EmployeeDocumentFileURL:    req.FileURL,
	}
	if err := h.DB.WithContext(c.Context()).Create(doc).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah dokumen")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Dokumen ditambahkan", doc)
}

// Delete cascade: gaji, dokumen, attendance, cuti + history, kredensial.
func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var m empModel.EmployeeModel
		if err := tx.First(&m, "employee_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pegawai")
		}

		var leaveIDs []uuid.UUID
		if err := tx.Model(&leaveModel.EmployeeLeaveModel{}).
			Where("employee_leave_employee_id = ?", id).
			Pluck("employee_leave_id", &leaveIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil cuti")
		}
		if len(leaveIDs) > 0 {
			if err := tx.Where("leave_status_history_leave_id IN ?", leaveIDs).
				Delete(&leaveModel.LeaveStatusHistoryModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus history cuti")
			}
		}

		children := []interface{}{
			&leaveModel.EmployeeLeaveModel{},
			&empAttModel.EmployeeAttendanceModel{},
			&empModel.EmployeeSalaryModel{},
			&empModel.EmployeeDocumentModel{},
		}
		columns := []string{
			"employee_leave_employee_id",
			"employee_attendance_employee_id",
			"employee_salary_employee_id",
			"employee_document_employee_id",
		}
		for i, child := range children {
			if err := tx.Unscoped().Where(columns[i]+" = ?", id).Delete(child).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data anak pegawai")
			}
		}

		if err := tx.Unscoped().Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pegawai")
		}
		if m.EmployeeUserID != nil {
			if err := tx.Unscoped().
				Delete(&userModel.UserModel{}, "user_id = ?", *m.EmployeeUserID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kredensial")
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Pegawai dihapus", nil)
}
