package dto

import "github.com/shopspring/decimal"

// InvoiceFormState estado que recibe el formulario después de un envío fallido o de un borrado.
// Errors solo aparece cuando falló la validación; un error de base de datos trae solo Message.
type InvoiceFormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// InvoiceTableRow fila de la tabla de facturas.
type InvoiceTableRow struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
	Date       string `json:"date"`
	Amount     string `json:"amount"` // formateado, ej. "$1,234.56"
	Status     string `json:"status"`
}

// InvoicesPage respuesta de GET /dashboard/invoices.
type InvoicesPage struct {
	Query       string            `json:"query"`
	CurrentPage int               `json:"current_page"`
	TotalPages  int               `json:"total_pages"`
	Invoices    []InvoiceTableRow `json:"invoices"`
}

// InvoiceForm factura para prellenar el formulario de edición. Amount en unidades mayores.
type InvoiceForm struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

// CustomerField opción del selector de clientes.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EditInvoiceData respuesta de GET /dashboard/invoices/:id/edit.
type EditInvoiceData struct {
	Invoice   InvoiceForm     `json:"invoice"`
	Customers []CustomerField `json:"customers"`
}
