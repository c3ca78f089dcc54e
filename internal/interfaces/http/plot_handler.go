package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/application/usecase"
)

// PlotHandler maneja las peticiones HTTP de terrenos (protegido).
type PlotHandler struct {
	uc *usecase.PlotUseCase
}

// NewPlotHandler construye el handler.
func NewPlotHandler(uc *usecase.PlotUseCase) *PlotHandler {
	return &PlotHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar terreno
// @Tags         terrenos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlotRequest  true  "Datos del terreno"
// @Success      201   {object}  dto.PlotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/terrenos [post]
func (h *PlotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar terrenos
// @Tags         terrenos
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "disponible | vendido | reservado"
// @Success      200     {array}  dto.PlotResponse
// @Router       /api/terrenos [get]
func (h *PlotHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("estado"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener terreno por ID
// @Tags         terrenos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del terreno"
// @Success      200  {object}  dto.PlotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/terrenos/{id} [get]
func (h *PlotHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar terreno
// @Tags         terrenos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del terreno"
// @Param        body  body  dto.UpdatePlotRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PlotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/terrenos/{id} [put]
func (h *PlotHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
