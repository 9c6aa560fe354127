package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/application/dto"
	"github.com/tu-usuario/gympro-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP de gestión de usuarios (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
	tr *ErrorTranslator
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, tr *ErrorTranslator) *UserHandler {
	return &UserHandler{uc: uc, tr: tr}
}

// List godoc
// @Summary      Listar usuarios con dirección expandida
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserExpandedResponse
// @Router       /user [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "User id is required")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "User not found")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "User id is required")
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "User data is required")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "User not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "User id is required")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if isNotFound(err) {
			return h.tr.NotFound(c, "User not found")
		}
		return h.tr.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
