package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/application/dto"
	"github.com/tu-usuario/gympro-api/internal/application/usecase"
)

// TrainingRoomHandler maneja las peticiones HTTP para TrainingRoom (protegido).
type TrainingRoomHandler struct {
	uc *usecase.TrainingRoomUseCase
	tr *ErrorTranslator
}

// NewTrainingRoomHandler construye el handler.
func NewTrainingRoomHandler(uc *usecase.TrainingRoomUseCase, tr *ErrorTranslator) *TrainingRoomHandler {
	return &TrainingRoomHandler{uc: uc, tr: tr}
}

// Create godoc
// @Summary      Crear sala de entrenamiento
// @Tags         training-rooms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrainingRoomRequest  true  "Datos de la sala"
// @Success      201   {object}  dto.TrainingRoomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /training-room [post]
func (h *TrainingRoomHandler) Create(c *fiber.Ctx) error {
	var in dto.TrainingRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Training room data is required")
	}
	if in.Name == "" {
		return h.tr.BadRequest(c, "Name is required")
	}
	if in.Capacity == nil {
		return h.tr.BadRequest(c, "Capacity is required")
	}
	if *in.Capacity <= 0 {
		return h.tr.BadRequest(c, "Capacity must be a positive number")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar salas con referencias expandidas
// @Tags         training-rooms
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TrainingRoomExpandedResponse
// @Router       /training-room [get]
func (h *TrainingRoomHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sala por ID
// @Tags         training-rooms
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sala"
// @Success      200  {object}  dto.TrainingRoomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /training-room/{id} [get]
func (h *TrainingRoomHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "Training room not found")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sala
// @Tags         training-rooms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la sala"
// @Param        body  body  dto.TrainingRoomRequest  true  "Datos de la sala"
// @Success      200   {object}  dto.TrainingRoomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /training-room/{id} [put]
func (h *TrainingRoomHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	var in dto.TrainingRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Training room data is required")
	}
	if in.Name == "" {
		return h.tr.BadRequest(c, "Name is required and must be a string")
	}
	if in.Capacity == nil {
		return h.tr.BadRequest(c, "Capacity is required and must be a number")
	}
	if *in.Capacity <= 0 {
		return h.tr.BadRequest(c, "Capacity must be a positive number")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "Training room not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sala
// @Tags         training-rooms
// @Security     Bearer
// @Param        id  path  string  true  "ID de la sala"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /training-room/{id} [delete]
func (h *TrainingRoomHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if isNotFound(err) {
			return h.tr.NotFound(c, "Training room not found")
		}
		return h.tr.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
