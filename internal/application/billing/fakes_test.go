package billing_test

import (
	"context"
	"sync"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
)

// fakeInvoiceRepo repositorio en memoria que cuenta llamadas y puede forzar errores.
type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
	rows     []*repository.InvoiceRow
	count    int
	calls    int
	err      error
	lastQ    string
	lastLim  int
	lastOff  int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	cur, ok := f.invoices[inv.ID]
	if !ok {
		return 0, nil
	}
	cur.CustomerID = inv.CustomerID
	cur.Amount = inv.Amount
	cur.Status = inv.Status
	return 1, nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]*repository.InvoiceRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQ, f.lastLim, f.lastOff = query, limit, offset
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, _ string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

func (f *fakeInvoiceRepo) ListLatest(_ context.Context, _ int) ([]*repository.InvoiceRow, error) {
	return f.rows, f.err
}

func (f *fakeInvoiceRepo) only() *entity.Invoice {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inv := range f.invoices {
		return inv
	}
	return nil
}

// fakeCustomerRepo clientes en memoria.
type fakeCustomerRepo struct {
	customers []*entity.Customer
	summaries []*repository.CustomerSummary
	err       error
	lastQuery string
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	f.customers = append(f.customers, c)
	return f.err
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListAll(_ context.Context) ([]*entity.Customer, error) {
	return f.customers, f.err
}

func (f *fakeCustomerRepo) ListFiltered(_ context.Context, query string) ([]*repository.CustomerSummary, error) {
	f.lastQuery = query
	return f.summaries, f.err
}

// fakeRevalidator registra las rutas revalidadas.
type fakeRevalidator struct {
	paths []string
}

func (f *fakeRevalidator) RevalidatePath(path string) {
	f.paths = append(f.paths, path)
}
