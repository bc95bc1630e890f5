package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceRowColumns = `
		i.id, i.customer_id, i.amount, i.status, i.date,
		c.name, c.email, c.image_url`

// Condición de búsqueda compartida por el listado y el conteo ($1 = patrón ILIKE).
const invoiceSearchWhere = `
		WHERE c.name ILIKE $1
		   OR c.email ILIKE $1
		   OR i.amount::text ILIKE $1
		   OR i.date::text ILIKE $1
		   OR i.status ILIKE $1`

// Create inserta la factura. Un customer_id inexistente falla por la llave foránea.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert invoice: %w: %w", domain.ErrForeignKey, err)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("insert invoice: %w: %w", domain.ErrDuplicate, err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update modifica cliente, monto y estado. La fecha no se toca.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) (int64, error) {
	query := `
		UPDATE invoices
		SET customer_id = $2,
		    amount      = $3,
		    status      = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("update invoice: %w: %w", domain.ErrForeignKey, err)
		}
		return 0, fmt.Errorf("update invoice: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina la factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID obtiene la factura; nil, nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT id, customer_id, amount, status, date FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListFiltered página de facturas que coinciden con query, más recientes primero.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*repository.InvoiceRow, error) {
	sql := `SELECT` + invoiceRowColumns + `
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id` + invoiceSearchWhere + `
		ORDER BY i.date DESC, i.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, searchPattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return scanInvoiceRows(rows)
}

// CountFiltered número de facturas que coinciden con query.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := `SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id` + invoiceSearchWhere
	var n int
	if err := r.q.QueryRow(ctx, sql, searchPattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// ListLatest últimas limit facturas por fecha.
func (r *InvoiceRepo) ListLatest(ctx context.Context, limit int) ([]*repository.InvoiceRow, error) {
	sql := `SELECT` + invoiceRowColumns + `
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC, i.id
		LIMIT $1`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest invoices: %w", err)
	}
	return scanInvoiceRows(rows)
}

func scanInvoiceRows(rows pgx.Rows) ([]*repository.InvoiceRow, error) {
	defer rows.Close()
	var list []*repository.InvoiceRow
	for rows.Next() {
		var row repository.InvoiceRow
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Amount, &row.Status, &row.Date,
			&row.CustomerName, &row.CustomerEmail, &row.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
