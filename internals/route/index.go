// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/route/details"
)

// SetupRoutes mendaftarkan semua route di bawah prefix /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api, db)
	details.AcademicRoutes(api, db)
	details.StudentRoutes(api, db)
	details.EmployeeRoutes(api, db)
	details.TransportRoutes(api, db)
}
