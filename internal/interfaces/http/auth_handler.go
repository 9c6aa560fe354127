package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/application/auth"
	"github.com/tu-usuario/gympro-api/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
	tr *ErrorTranslator
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, tr *ErrorTranslator) *AuthHandler {
	return &AuthHandler{uc: uc, tr: tr}
}

// Register godoc
// @Summary      Registrar usuario
// @Description  Crea un usuario con rol customer. Nunca devuelve el password ni un token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Email and password are required")
	}
	if in.Email == "" || in.Password == "" {
		return h.tr.BadRequest(c, "Email and password are required")
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Email and password are required")
	}
	if in.Email == "" || in.Password == "" {
		return h.tr.BadRequest(c, "Email and password are required")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.JSON(out)
}
