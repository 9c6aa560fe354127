package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/application/dto"
	"github.com/tu-usuario/gympro-api/internal/application/usecase"
	"github.com/tu-usuario/gympro-api/internal/domain"
)

// AddressHandler maneja las peticiones HTTP para Address (protegido).
type AddressHandler struct {
	uc *usecase.AddressUseCase
	tr *ErrorTranslator
}

// NewAddressHandler construye el handler.
func NewAddressHandler(uc *usecase.AddressUseCase, tr *ErrorTranslator) *AddressHandler {
	return &AddressHandler{uc: uc, tr: tr}
}

// validate devuelve el error de validación sin escribir la respuesta; el
// handler lo pasa por tr.Respond, que es quien fija el status 400.
func (h *AddressHandler) validate(in dto.AddressRequest) error {
	if in.Street == "" {
		return domain.NewValidationError("street is required and must be a string")
	}
	if in.City == "" {
		return domain.NewValidationError("city is required and must be a string")
	}
	if in.ZipCode == "" {
		return domain.NewValidationError("zipCode is required and must be a string")
	}
	if in.Country == "" {
		return domain.NewValidationError("country is required and must be a string")
	}
	return nil
}

// Create godoc
// @Summary      Crear dirección
// @Tags         addresses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddressRequest  true  "Datos de la dirección"
// @Success      201   {object}  dto.AddressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /address [post]
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var in dto.AddressRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Address data is required")
	}
	if in.Street == "" || in.City == "" || in.ZipCode == "" || in.Country == "" {
		return h.tr.BadRequest(c, "Address data is required")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar direcciones
// @Tags         addresses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AddressResponse
// @Router       /address [get]
func (h *AddressHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.tr.Respond(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener dirección por ID
// @Tags         addresses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la dirección"
// @Success      200  {object}  dto.AddressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /address/{id} [get]
func (h *AddressHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "Address not found")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar dirección
// @Tags         addresses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la dirección"
// @Param        body  body  dto.AddressRequest  true  "Datos de la dirección"
// @Success      200   {object}  dto.AddressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /address/{id} [put]
func (h *AddressHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	var in dto.AddressRequest
	if err := c.BodyParser(&in); err != nil {
		return h.tr.BadRequest(c, "Address data is required")
	}
	if err := h.validate(in); err != nil {
		return h.tr.Respond(c, err)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.tr.Respond(c, err)
	}
	if out == nil {
		return h.tr.NotFound(c, "Address not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dirección
// @Tags         addresses
// @Security     Bearer
// @Param        id  path  string  true  "ID de la dirección"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /address/{id} [delete]
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return h.tr.BadRequest(c, "ID is required")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if isNotFound(err) {
			return h.tr.NotFound(c, "Address not found")
		}
		return h.tr.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
