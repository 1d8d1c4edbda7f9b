// file: internals/route/details/employee_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	empAttController "sekolahku_backend/internals/features/employees/attendance/controller"
	employeeController "sekolahku_backend/internals/features/employees/employees/controller"
	leaveController "sekolahku_backend/internals/features/employees/leaves/controller"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	departments := &employeeController.DepartmentController{DB: db}
	employees := &employeeController.EmployeeController{DB: db}
	attendance := &empAttController.EmployeeAttendanceController{DB: db}
	leaves := &leaveController.EmployeeLeaveController{DB: db}

	adminOnly := authmw.OnlyRoles(userModel.RoleAdmin)
	staffUp := authmw.OnlyRoles(userModel.RoleAdmin, userModel.RoleStaff)

	dep := api.Group("/departments", authmw.AuthMiddleware())
	dep.Get("/", staffUp, departments.List)
	dep.Post("/", adminOnly, departments.Create)
	dep.Patch("/:id", adminOnly, departments.Update)
	dep.Delete("/:id", adminOnly, departments.Delete)

	emp := api.Group("/employees", authmw.AuthMiddleware())
	emp.Get("/", staffUp, employees.List)
	emp.Get("/:id", staffUp, employees.GetByID)
	emp.Post("/", adminOnly, employees.Create)
	emp.Patch("/:id", adminOnly, employees.Update)
	emp.Post("/:id/salaries", adminOnly, employees.AddSalary)
	emp.Patch("/:id/salaries/latest", adminOnly, employees.UpdateLatestSalary)
	emp.Post("/:id/documents", staffUp, employees.AddDocument)
	emp.Delete("/:id", adminOnly, employees.Delete)

	att := api.Group("/employee-attendances", authmw.AuthMiddleware())
	att.Post("/", staffUp, attendance.Upsert)
	att.Post("/batch", staffUp, attendance.UpsertBatch)
	att.Get("/employee/:employee_id", attendance.ListByEmployee)

	lv := api.Group("/employee-leaves", authmw.AuthMiddleware())
	lv.Post("/", leaves.Create)
	lv.Post("/:id/transition", adminOnly, leaves.Transition)
	lv.Post("/:id/cancel", leaves.Cancel)
	lv.Get("/employee/:employee_id", leaves.ListByEmployee)
}
