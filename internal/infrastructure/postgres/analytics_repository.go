package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para las tarjetas del dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountInvoices total de facturas.
func (r *AnalyticsRepo) CountInvoices(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// CountCustomers total de clientes.
func (r *AnalyticsRepo) CountCustomers(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// SumByStatus suma de montos (centavos) de facturas pagadas y pendientes.
// SUM sobre BIGINT devuelve NUMERIC; el codec de decimal del pool lo convierte.
func (r *AnalyticsRepo) SumByStatus(ctx context.Context) (repository.InvoiceTotals, error) {
	const query = `
		SELECT
		    COALESCE(SUM(CASE WHEN status = 'paid'    THEN amount ELSE 0 END), 0) AS paid,
		    COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		FROM invoices`
	var totals repository.InvoiceTotals
	if err := r.q.QueryRow(ctx, query).Scan(&totals.Paid, &totals.Pending); err != nil {
		return repository.InvoiceTotals{}, fmt.Errorf("sum invoices by status: %w", err)
	}
	return totals, nil
}
