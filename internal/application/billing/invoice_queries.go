package billing

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/invoice"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/pkg/currency"
)

// ItemsPerPage filas por página en la tabla de facturas.
const ItemsPerPage = 6

// MaxPage página más alta que se consulta; el offset (MaxPage-1)*ItemsPerPage cabe en int32.
const MaxPage = math.MaxInt32 / ItemsPerPage

// InvoiceQueries lecturas que consumen las páginas de facturas (tabla, paginación, edición).
type InvoiceQueries struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceQueries construye el caso de uso de lectura.
func NewInvoiceQueries(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceQueries {
	return &InvoiceQueries{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// ListInvoices devuelve la página pedida y el total de páginas para query.
// Las dos consultas van en paralelo. page < 1 se trata como 1 y page > MaxPage como MaxPage.
func (q *InvoiceQueries) ListInvoices(ctx context.Context, query string, page int) (*dto.InvoicesPage, error) {
	page = clampPage(page)
	var (
		rows  []dto.InvoiceTableRow
		pages int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = q.FilteredInvoices(gctx, query, page)
		return err
	})
	g.Go(func() error {
		var err error
		pages, err = q.InvoicePages(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.InvoicesPage{Query: query, CurrentPage: page, TotalPages: pages, Invoices: rows}, nil
}

// FilteredInvoices filas de la página page (1-based) que coinciden con query.
func (q *InvoiceQueries) FilteredInvoices(ctx context.Context, query string, page int) ([]dto.InvoiceTableRow, error) {
	page = clampPage(page)
	list, err := q.invoiceRepo.ListFiltered(ctx, query, ItemsPerPage, (page-1)*ItemsPerPage)
	if err != nil {
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}
	out := make([]dto.InvoiceTableRow, 0, len(list))
	for _, r := range list {
		out = append(out, toInvoiceTableRow(r))
	}
	return out, nil
}

// InvoicePages total de páginas para query: ceil(coincidencias / ItemsPerPage).
func (q *InvoiceQueries) InvoicePages(ctx context.Context, query string) (int, error) {
	count, err := q.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("fetch total number of invoices: %w", err)
	}
	return TotalPages(count), nil
}

// clampPage lleva page al rango [1, MaxPage].
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// TotalPages páginas necesarias para count filas.
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + ItemsPerPage - 1) / ItemsPerPage
}

// EditInvoice datos del formulario de edición: la factura (monto en unidades mayores) y los clientes.
// Devuelve domain.ErrNotFound si el id no es un UUID o no existe.
func (q *InvoiceQueries) EditInvoice(ctx context.Context, id string) (*dto.EditInvoiceData, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	var (
		inv       *entity.Invoice
		customers []*entity.Customer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inv, err = q.invoiceRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = q.customerRepo.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.EditInvoiceData{
		Invoice: dto.InvoiceForm{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Amount:     invoice.FromCents(inv.Amount),
			Status:     inv.Status,
		},
		Customers: make([]dto.CustomerField, 0, len(customers)),
	}
	for _, c := range customers {
		out.Customers = append(out.Customers, dto.CustomerField{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func toInvoiceTableRow(r *repository.InvoiceRow) dto.InvoiceTableRow {
	return dto.InvoiceTableRow{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Name:       r.CustomerName,
		Email:      r.CustomerEmail,
		ImageURL:   r.ImageURL,
		Date:       r.Date.Format(invoice.DateLayout),
		Amount:     currency.FormatCents(r.Amount),
		Status:     r.Status,
	}
}
