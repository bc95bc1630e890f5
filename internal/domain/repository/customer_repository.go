package repository

import (
	"context"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// CustomerSummary cliente con totales de facturación (tabla de clientes).
type CustomerSummary struct {
	entity.Customer
	TotalInvoices int
	TotalPending  int64 // centavos
	TotalPaid     int64 // centavos
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// ListAll devuelve todos los clientes ordenados por nombre (selector del formulario).
	ListAll(ctx context.Context) ([]*entity.Customer, error)
	ListFiltered(ctx context.Context, query string) ([]*CustomerSummary, error)
}
