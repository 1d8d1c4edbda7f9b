// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	userModel "sekolahku_backend/internals/features/users/auth/model"
	helper "sekolahku_backend/internals/helpers"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

var validate = validator.New()

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func signToken(user *userModel.UserModel, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.UserRole,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja sama dengan password salah
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, err := signToken(&user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := signToken(&user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// cookie untuk klien web, body untuk klien mobile
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          user,
	})
}

// Refresh menukar refresh token valid dengan access token baru.
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode signing tidak valid")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	access, err := signToken(&user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.Success(c, "Token diperbarui", fiber.Map{
		"access_token": access,
	})
}

// Register hanya untuk admin membuat akun internal (guru/staf).
// Akun siswa & pegawai lahir dari alur pembuatan entitasnya.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	switch role {
	case userModel.RoleAdmin, userModel.RoleTeacher, userModel.RoleStaff:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Role tidak dikenal")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := &userModel.UserModel{
		UserEmail:        strings.ToLower(strings.TrimSpace(req.Email)),
		UserPasswordHash: string(hash),
		UserRole:         role,
	}
	if err := h.DB.WithContext(c.Context()).Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User dibuat", user)
}

func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals(authmw.LocUserID).(uuid.UUID)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(req.OldPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}
	user.UserPasswordHash = string(hash)
	user.UserUpdatedAt = time.Now()
	if err := h.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan password")
	}
	return helper.Success(c, "Password diperbarui", nil)
}

func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals(authmw.LocUserID).(uuid.UUID)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	return helper.Success(c, "OK", user)
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, "Logout berhasil", nil)
}
