package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/application/dto"
	"github.com/tu-usuario/gympro-api/internal/application/usecase"
	"github.com/tu-usuario/gympro-api/internal/domain"
	"github.com/tu-usuario/gympro-api/internal/domain/entity"
)

// ExerciseHandler maneja las peticiones HTTP para Exercise (protegido).
type ExerciseHandler struct {
	uc *usecase.ExerciseUseCase
	tr *ErrorTranslator
}

// NewExerciseHandler construye el handler.
func NewExerciseHandler(uc *usecase.ExerciseUseCase, tr *ErrorTranslator) *ExerciseHandler {
	return &ExerciseHandler{uc: uc, tr: tr}
}

// validate valida el documento completo: se usa igual en create y update.
// Devuelve el error sin escribir la respuesta; tr.Respond fija el status 400.
func (h *ExerciseHandler) validate(in dto.ExerciseRequest) error {
	if in.Name == "" {
		return domain.NewValidationError("Name is required")
	}
	if in.Description == "" {
		return domain.NewValidationError("Description is required")
	}
	if in.Duration == nil {
		return domain.NewValidationError("Duration must be a number")
	}
	if in.Repetitions == nil {
		return domain.NewValidationError("Repetitions must be a number")
	}
	if in.Series == nil {
		return domain.NewValidationError("Series must be a number")
	}
	if in.Rest == nil {
		return domain.NewValidationError("Rest must be a number")
	}
	if in.Difficulty == "" {
		return domain.NewValidationError("Difficulty is required")
	}
	if entity.NormalizeDifficulty(in.Difficulty) == "" {
		return domain.NewValidationError("Difficulty must be one of easy, medium, hard")
	}
	return nil
}

// Create godoc
// @Summary      Crear ejercicio
// @Tags         exercises
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExerciseRequest  true  "Datos del ejercicio"
// @Success      201   {object}  dto.ExerciseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /exercise [post]
func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExerciseRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Exercise data is required")
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
// @Summary      Listar ejercicios
// @Tags         exercises
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ExerciseResponse
// @Router       /exercise [get]
func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ejercicio por ID
// @Tags         exercises
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ejercicio"
// @Success      200  {object}  dto.ExerciseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /exercise/{id} [get]
func (h *ExerciseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "Exercise not found")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ejercicio
// @Tags         exercises
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del ejercicio"
// @Param        body  body  dto.ExerciseRequest  true  "Datos del ejercicio"
// @Success      200   {object}  dto.ExerciseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /exercise/{id} [put]
func (h *ExerciseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	var in dto.ExerciseRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Exercise data is required")
	}
	if err := h.validate(in); err != nil {
		return h.tr.Respond(c, err)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "Exercise not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ejercicio
// @Tags         exercises
// @Security     Bearer
// @Param        id  path  string  true  "ID del ejercicio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /exercise/{id} [delete]
func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if isNotFound(err) {
			return h.tr.NotFound(c, "Exercise not found")
		}
		return h.tr.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
