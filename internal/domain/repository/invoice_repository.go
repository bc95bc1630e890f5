package repository

import (
	"context"
	"time"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// InvoiceRow factura unida con los datos del cliente, tal como se muestra en las tablas.
type InvoiceRow struct {
	ID            string
	CustomerID    string
	Amount        int64 // centavos
	Status        string
	Date          time.Time
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// Cada operación de escritura es una única sentencia parametrizada.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update modifica customer_id, amount y status de la factura con ese id; date nunca se toca.
	// Devuelve las filas afectadas (0 si el id no existe, sin error).
	Update(ctx context.Context, invoice *entity.Invoice) (int64, error)
	Delete(ctx context.Context, id string) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// ListFiltered busca por nombre/email del cliente, monto, fecha o estado (ILIKE), más recientes primero.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	ListLatest(ctx context.Context, limit int) ([]*InvoiceRow, error)
}
