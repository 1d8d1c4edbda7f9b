// file: internals/route/details/academic_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearController "sekolahku_backend/internals/features/academics/academic_years/controller"
	classController "sekolahku_backend/internals/features/academics/classes/controller"
	subjectController "sekolahku_backend/internals/features/academics/subjects/controller"
	ttController "sekolahku_backend/internals/features/academics/timetables/controller"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	years := &yearController.AcademicYearController{DB: db}
	classes := &classController.ClassController{DB: db}
	subjects := &subjectController.SubjectController{DB: db}
	offerings := &subjectController.CourseOfferingController{DB: db}
	timetables := &ttController.TimetableController{DB: db}

	adminOnly := authmw.OnlyRoles(userModel.RoleAdmin)
	staffUp := authmw.OnlyRoles(userModel.RoleAdmin, userModel.RoleTeacher, userModel.RoleStaff)

	y := api.Group("/academic-years", authmw.AuthMiddleware())
	y.Get("/", staffUp, years.List)
	y.Get("/:id", staffUp, years.GetByID)
	y.Post("/", adminOnly, years.Create)
	y.Patch("/:id", adminOnly, years.Update)
	y.Post("/:id/activate", adminOnly, years.SetActive)
	y.Delete("/:id", adminOnly, years.Delete)

	cl := api.Group("/classes", authmw.AuthMiddleware())
	cl.Get("/", staffUp, classes.List)
	cl.Get("/:id", staffUp, classes.GetByID)
	cl.Post("/", adminOnly, classes.Create)
	cl.Patch("/:id", adminOnly, classes.Update)
	cl.Delete("/:id", adminOnly, classes.Delete)
	cl.Get("/:class_id/offerings", staffUp, offerings.ListByClass)
	cl.Get("/:class_id/timetable", staffUp, timetables.GetByClass)

	sub := api.Group("/subjects", authmw.AuthMiddleware())
	sub.Get("/", staffUp, subjects.List)
	sub.Get("/:id", staffUp, subjects.GetByID)
	sub.Post("/", adminOnly, subjects.Create)
	sub.Patch("/:id", adminOnly, subjects.Update)
	sub.Delete("/:id", adminOnly, subjects.Delete)
	sub.Post("/:id/offerings/sync", adminOnly, offerings.SyncOfferings)

	off := api.Group("/offerings", authmw.AuthMiddleware())
	off.Post("/:id/materials", staffUp, offerings.AddMaterial)
	off.Get("/:id/materials", staffUp, offerings.ListMaterials)
	off.Delete("/materials/:material_id", staffUp, offerings.DeleteMaterial)

	tt := api.Group("/timetables", authmw.AuthMiddleware())
	tt.Post("/", adminOnly, timetables.Create)
	tt.Patch("/:id", adminOnly, timetables.Update)
	tt.Delete("/:id", adminOnly, timetables.Delete)
}
