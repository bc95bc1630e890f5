package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/invoice"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/cache"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

// Campos que se leen del formulario de factura; el resto del cuerpo se ignora.
var invoiceFormFields = []string{invoice.FieldCustomerID, invoice.FieldAmount, invoice.FieldStatus}

// InvoiceHandler maneja las páginas y acciones de facturas (protegido).
type InvoiceHandler struct {
	uc      *billing.InvoiceUseCase
	queries *billing.InvoiceQueries
	pdf     *billing.PDFUseCase
	cache   *cache.PathCache
	log     *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	uc *billing.InvoiceUseCase,
	queries *billing.InvoiceQueries,
	pdf *billing.PDFUseCase,
	pathCache *cache.PathCache,
	log *logger.Logger,
) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, queries: queries, pdf: pdf, cache: pathCache, log: log}
}

// List godoc
// @Summary      Tabla de facturas
// @Description  Busca por nombre/email del cliente, monto, fecha o estado. 6 filas por página.
// @Tags         invoices
// @Produce      json
// @Param        query  query  string  false  "texto de búsqueda"
// @Param        page   query  int     false  "página (1-based)"
// @Success      200  {object}  dto.InvoicesPage
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	key := "query=" + query + "&page=" + strconv.Itoa(page)

	if body, ok := h.cache.Get(billing.InvoicesPath, key); ok {
		c.Set("X-Cache", "HIT")
		c.Type("json")
		return c.Send(body)
	}

	gen := h.cache.Generation(billing.InvoicesPath)
	out, err := h.queries.ListInvoices(c.UserContext(), query, page)
	if err != nil {
		h.log.Error().Err(err).Str("query", query).Int("page", page).Msg("listar facturas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron obtener las facturas"})
	}
	body, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode invoices page: %w", err)
	}
	// Si una mutación revalidó el listado durante la consulta, no se guarda.
	h.cache.SetIfCurrent(billing.InvoicesPath, key, gen, body)
	c.Set("X-Cache", "MISS")
	c.Type("json")
	return c.Send(body)
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        customerId  formData  string  true  "id del cliente"
// @Param        amount      formData  number  true  "monto en dólares (> 0)"
// @Param        status      formData  string  true  "pending | paid"
// @Success      303  "creada: redirige a /dashboard/invoices"
// @Failure      422  {object}  dto.InvoiceFormState
// @Failure      500  {object}  dto.InvoiceFormState
// @Router       /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	form, err := readInvoiceForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return writeActionResult(c, h.uc.CreateInvoice(c.UserContext(), form))
}

// Edit godoc
// @Summary      Datos del formulario de edición
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "id de la factura"
// @Success      200  {object}  dto.EditInvoiceData
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/invoices/{id}/edit [get]
func (h *InvoiceHandler) Edit(c *fiber.Ctx) error {
	data, err := h.queries.EditInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		h.log.Error().Err(err).Str("invoice_id", c.Params("id")).Msg("editar factura")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo obtener la factura"})
	}
	return c.JSON(data)
}

// Update godoc
// @Summary      Editar factura
// @Description  Modifica cliente, monto y estado. La fecha no cambia.
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id          path      string  true  "id de la factura"
// @Param        customerId  formData  string  true  "id del cliente"
// @Param        amount      formData  number  true  "monto en dólares (> 0)"
// @Param        status      formData  string  true  "pending | paid"
// @Success      303  "editada: redirige a /dashboard/invoices"
// @Failure      422  {object}  dto.InvoiceFormState
// @Failure      500  {object}  dto.InvoiceFormState
// @Router       /dashboard/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	form, err := readInvoiceForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return writeActionResult(c, h.uc.UpdateInvoice(c.UserContext(), c.Params("id"), form))
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "id de la factura"
// @Success      200  {object}  dto.InvoiceFormState
// @Failure      500  {object}  dto.InvoiceFormState
// @Router       /dashboard/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	return writeActionResult(c, h.uc.DeleteInvoice(c.UserContext(), c.Params("id")))
}

// PDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "id de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.pdf.DownloadInvoicePDF(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		h.log.Error().Err(err).Str("invoice_id", id).Msg("generar PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, id))
	return c.Send(out)
}

// writeActionResult traduce el resultado de una mutación a HTTP:
// navegación → 303, error de validación → 422, error de base de datos → 500, completado → 200.
func writeActionResult(c *fiber.Ctx, res billing.ActionResult) error {
	switch res.Kind {
	case billing.ActionRedirect:
		return c.Redirect(res.Location, fiber.StatusSeeOther)
	case billing.ActionCompleted:
		return c.JSON(res.State)
	default:
		status := fiber.StatusInternalServerError
		if len(res.State.Errors) > 0 {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(res.State)
	}
}

// readInvoiceForm extrae los campos del formulario tal como llegaron, sin convertirlos.
// Un campo que no vino en el cuerpo queda ausente del mapa (no como texto vacío).
// Acepta x-www-form-urlencoded, multipart/form-data y JSON.
func readInvoiceForm(c *fiber.Ctx) (invoice.FormData, error) {
	form := invoice.FormData{}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		var raw map[string]any
		dec := json.NewDecoder(bytes.NewReader(c.Body()))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		for _, f := range invoiceFormFields {
			switch v := raw[f].(type) {
			case string:
				form[f] = v
			case json.Number:
				form[f] = v.String()
			case bool:
				form[f] = strconv.FormatBool(v)
			}
		}
		return form, nil
	}

	args := c.Request().PostArgs()
	for _, f := range invoiceFormFields {
		if args.Has(f) {
			form[f] = string(args.Peek(f))
		}
	}
	if mf, err := c.MultipartForm(); err == nil {
		for _, f := range invoiceFormFields {
			if v, ok := mf.Value[f]; ok && len(v) > 0 {
				form[f] = v[0]
			}
		}
	}
	return form, nil
}
