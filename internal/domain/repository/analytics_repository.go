package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InvoiceTotals sumas de montos por estado, en centavos.
type InvoiceTotals struct {
	Paid    decimal.Decimal
	Pending decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para las tarjetas del dashboard.
type AnalyticsRepository interface {
	CountInvoices(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	SumByStatus(ctx context.Context) (InvoiceTotals, error)
}
