// file: internals/route/details/auth_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	auth := api.Group("/auth")
	auth.Post("/login", ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)

	protected := auth.Group("", authmw.AuthMiddleware())
	protected.Get("/me", ctrl.Me)
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
	protected.Post("/register", authmw.OnlyRoles(userModel.RoleAdmin), ctrl.Register)
}
