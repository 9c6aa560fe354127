package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/application/dto"
	"github.com/tu-usuario/gympro-api/internal/application/usecase"
	"github.com/tu-usuario/gympro-api/internal/domain"
)

// DescriptionHandler maneja las peticiones HTTP para Description (protegido).
type DescriptionHandler struct {
	uc *usecase.DescriptionUseCase
	tr *ErrorTranslator
}

// NewDescriptionHandler construye el handler.
func NewDescriptionHandler(uc *usecase.DescriptionUseCase, tr *ErrorTranslator) *DescriptionHandler {
	return &DescriptionHandler{uc: uc, tr: tr}
}

// validate exige las tres listas; una lista ausente (nil) no pasa, una lista
// vacía explícita tampoco. Devuelve el error sin escribir la respuesta.
func (h *DescriptionHandler) validate(in dto.DescriptionRequest) error {
	if len(in.Installations) == 0 {
		return domain.NewValidationError("Installations are required")
	}
	if len(in.Equipments) == 0 {
		return domain.NewValidationError("Equipments are required")
	}
	if len(in.Activities) == 0 {
		return domain.NewValidationError("Activities are required")
	}
	return nil
}

// Create godoc
// @Summary      Crear descripción de sala
// @Tags         descriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DescriptionRequest  true  "Datos de la descripción"
// @Success      201   {object}  dto.DescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /description [post]
func (h *DescriptionHandler) Create(c *fiber.Ctx) error {
	var in dto.DescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Description data is required")
	}
	if err := h.validate(in); err != nil {
		return h.tr.Respond(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar descripciones
// @Tags         descriptions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DescriptionResponse
// @Router       /description [get]
func (h *DescriptionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener descripción por ID
// @Tags         descriptions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la descripción"
// @Success      200  {object}  dto.DescriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /description/{id} [get]
func (h *DescriptionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "Description not found")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar descripción
// @Tags         descriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la descripción"
// @Param        body  body  dto.DescriptionRequest  true  "Datos de la descripción"
// @Success      200   {object}  dto.DescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /description/{id} [put]
func (h *DescriptionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	var in dto.DescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Description data is required")
	}
	if err := h.validate(in); err != nil {
		return h.tr.Respond(c, err)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "Description not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar descripción
// @Tags         descriptions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la descripción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /description/{id} [delete]
func (h *DescriptionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if isNotFound(err) {
			return h.tr.NotFound(c, "Description not found")
		}
		return h.tr.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
