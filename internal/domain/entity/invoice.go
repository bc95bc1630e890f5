package entity

import "time"

// Estados válidos de una factura. No hay transiciones obligatorias: se puede pasar de uno a otro libremente.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice representa una factura del dashboard.
// Amount se guarda en unidades menores (centavos) para evitar errores de punto flotante.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64     // centavos, siempre > 0
	Status     string    // pending | paid
	Date       time.Time // fecha de creación (solo día), asignada por el servidor
}

// IsValidInvoiceStatus informa si s es uno de los estados permitidos.
func IsValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}
