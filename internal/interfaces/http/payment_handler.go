package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/application/sales"
)

// PaymentHandler maneja las peticiones HTTP del panel de pagos (protegido).
type PaymentHandler struct {
	uc *sales.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *sales.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuotas de crédito
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        buscar  query  string  false  "Filtro por cliente, cédula, lote o número de cuota"
// @Success      200     {array}  dto.PaymentListItem
// @Router       /api/pagos [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("buscar"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de pagos pendientes y vencidos
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PaymentSummaryResponse
// @Router       /api/pagos/resumen [get]
func (h *PaymentHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RecordPayment godoc
// @Summary      Registrar pago de una cuota
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuota"
// @Param        body  body  dto.RecordPaymentRequest  true  "Monto pagado"
// @Success      200   {object}  dto.InstallmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pagos/{id} [put]
func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordPayment(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
