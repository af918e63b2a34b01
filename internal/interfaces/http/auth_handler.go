package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DEENUU1/Jobs-portal/internal/application/auth"
	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
)

// AuthHandler maneja registro, activación, login y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register registra una cuenta user o company. La cuenta nace inactiva y el
// enlace de activación se envía por correo en segundo plano.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	account, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// Activate activa una cuenta con el token del enlace enviado por correo.
func (h *AuthHandler) Activate(c *fiber.Ctx) error {
	accountID := c.Params("account_id")
	token := c.Params("token")
	if accountID == "" || token == "" {
		return badRequest(c, "account_id y token son requeridos")
	}
	if err := h.uc.Activate(accountID, token); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"activated": true})
}

// Login autentica por email y contraseña y devuelve un JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword cambia la contraseña verificando email y contraseña actual.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.ChangePassword(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"changed": true})
}

// Me devuelve la cuenta autenticada.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account, err := h.uc.GetAccount(GetAccountID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

// UpdateProfile actualiza el perfil de la cuenta autenticada.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	account, err := h.uc.UpdateProfile(GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}
