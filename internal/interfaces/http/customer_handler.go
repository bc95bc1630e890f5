package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

// CustomerHandler maneja la tabla de clientes (protegido).
type CustomerHandler struct {
	uc  *billing.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Tabla de clientes
// @Tags         customers
// @Produce      json
// @Param        query  query  string  false  "nombre o email"
// @Success      200  {array}   dto.CustomerTableRow
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListFiltered(c.UserContext(), c.Query("query"))
	if err != nil {
		h.log.Error().Err(err).Msg("listar clientes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron obtener los clientes"})
	}
	return c.JSON(list)
}
