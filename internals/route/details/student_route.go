// file: internals/route/details/student_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admissionController "sekolahku_backend/internals/features/students/admissions/controller"
	attendanceController "sekolahku_backend/internals/features/students/attendance/controller"
	studentController "sekolahku_backend/internals/features/students/students/controller"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	students := &studentController.StudentController{DB: db}
	admissions := &admissionController.AdmissionController{DB: db}
	attendance := &attendanceController.StudentAttendanceController{DB: db}
	leaves := &attendanceController.StudentLeaveController{DB: db}

	adminOnly := authmw.OnlyRoles(userModel.RoleAdmin)
	staffUp := authmw.OnlyRoles(userModel.RoleAdmin, userModel.RoleTeacher, userModel.RoleStaff)

	st := api.Group("/students", authmw.AuthMiddleware())
	st.Get("/", staffUp, students.List)
	st.Get("/:id", staffUp, students.GetByID)
	st.Post("/", adminOnly, students.Create)
	st.Patch("/:id", staffUp, students.Update)
	st.Post("/:id/documents", staffUp, students.AddDocument)
	st.Delete("/:id", adminOnly, students.Delete)

	ad := api.Group("/admissions", authmw.AuthMiddleware())
	ad.Post("/admit", adminOnly, admissions.AdmitStudents)
	ad.Post("/promote", adminOnly, admissions.PromoteStudents)
	ad.Get("/class/:class_id", staffUp, admissions.ListByClass)
	ad.Patch("/:id/roll-number", staffUp, admissions.UpdateRollNumber)

	att := api.Group("/student-attendances", authmw.AuthMiddleware())
	att.Post("/", staffUp, attendance.Upsert)
	att.Post("/batch", staffUp, attendance.UpsertBatch)
	att.Post("/range", staffUp, attendance.UpsertRange)
	att.Get("/student/:student_id", attendance.ListByStudent)

	lv := api.Group("/student-leaves", authmw.AuthMiddleware())
	lv.Post("/", leaves.Create)
	lv.Post("/:id/transition", staffUp, leaves.Transition)
	lv.Post("/:id/cancel", leaves.Cancel)
	lv.Get("/student/:student_id", leaves.ListByStudent)
}
