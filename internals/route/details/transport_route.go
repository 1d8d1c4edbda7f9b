// file: internals/route/details/transport_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	busController "sekolahku_backend/internals/features/transport/buses/controller"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func TransportRoutes(api fiber.Router, db *gorm.DB) {
	buses := &busController.BusController{DB: db}

	adminOnly := authmw.OnlyRoles(userModel.RoleAdmin)

	b := api.Group("/buses", authmw.AuthMiddleware())
	b.Get("/", buses.List)
	b.Get("/:id", buses.GetByID)
	b.Post("/", adminOnly, buses.Create)
	b.Patch("/:id", adminOnly, buses.Update)
	b.Delete("/:id", adminOnly, buses.Delete)
}
