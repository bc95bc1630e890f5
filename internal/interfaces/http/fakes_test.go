package http_test

import (
	"context"
	"sync"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
)

// memStore base de datos en memoria compartida por los repositorios falsos.
type memStore struct {
	mu        sync.Mutex
	invoices  map[string]*entity.Invoice
	customers map[string]*entity.Customer
	users     map[string]*entity.User
	fail      error
	writes    int
	listCalls int
	// duringList se ejecuta una vez dentro de ListFiltered, después de leer las filas
	// y antes de devolverlas (simula una mutación concurrente con la lectura).
	duringList func()
}

func newMemStore() *memStore {
	return &memStore{
		invoices:  map[string]*entity.Invoice{},
		customers: map[string]*entity.Customer{},
		users:     map[string]*entity.User{},
	}
}

type memInvoiceRepo struct{ s *memStore }

func (r memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.writes++
	if r.s.fail != nil {
		return r.s.fail
	}
	cp := *inv
	r.s.invoices[inv.ID] = &cp
	return nil
}

func (r memInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.writes++
	if r.s.fail != nil {
		return 0, r.s.fail
	}
	cur, ok := r.s.invoices[inv.ID]
	if !ok {
		return 0, nil
	}
	cur.CustomerID, cur.Amount, cur.Status = inv.CustomerID, inv.Amount, inv.Status
	return 1, nil
}

func (r memInvoiceRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.writes++
	if r.s.fail != nil {
		return r.s.fail
	}
	delete(r.s.invoices, id)
	return nil
}

func (r memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if inv, ok := r.s.invoices[id]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, nil
}

func (r memInvoiceRepo) ListFiltered(_ context.Context, _ string, limit, offset int) ([]*repository.InvoiceRow, error) {
	r.s.mu.Lock()
	r.s.listCalls++
	rows := r.rowsLocked()
	hook := r.s.duringList
	r.s.duringList = nil
	r.s.mu.Unlock()
	if hook != nil {
		hook()
	}
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (r memInvoiceRepo) CountFiltered(_ context.Context, _ string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.invoices), nil
}

func (r memInvoiceRepo) ListLatest(_ context.Context, limit int) ([]*repository.InvoiceRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := r.rowsLocked()
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r memInvoiceRepo) rowsLocked() []*repository.InvoiceRow {
	var rows []*repository.InvoiceRow
	for _, inv := range r.s.invoices {
		c := r.s.customers[inv.CustomerID]
		row := &repository.InvoiceRow{
			ID: inv.ID, CustomerID: inv.CustomerID, Amount: inv.Amount, Status: inv.Status, Date: inv.Date,
		}
		if c != nil {
			row.CustomerName, row.CustomerEmail, row.ImageURL = c.Name, c.Email, c.ImageURL
		}
		rows = append(rows, row)
	}
	return rows
}

type memCustomerRepo struct{ s *memStore }

func (r memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[c.ID] = c
	return nil
}

func (r memCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.customers[id], nil
}

func (r memCustomerRepo) ListAll(_ context.Context) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Customer
	for _, c := range r.s.customers {
		list = append(list, c)
	}
	return list, nil
}

func (r memCustomerRepo) ListFiltered(_ context.Context, _ string) ([]*repository.CustomerSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*repository.CustomerSummary
	for _, c := range r.s.customers {
		sum := &repository.CustomerSummary{Customer: *c}
		for _, inv := range r.s.invoices {
			if inv.CustomerID != c.ID {
				continue
			}
			sum.TotalInvoices++
			if inv.Status == entity.InvoiceStatusPaid {
				sum.TotalPaid += inv.Amount
			} else {
				sum.TotalPending += inv.Amount
			}
		}
		list = append(list, sum)
	}
	return list, nil
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.Email] = u
	return nil
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users[email], nil
}

type memAnalyticsRepo struct{ s *memStore }

func (r memAnalyticsRepo) CountInvoices(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.invoices), nil
}

func (r memAnalyticsRepo) CountCustomers(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.customers), nil
}

func (r memAnalyticsRepo) SumByStatus(context.Context) (repository.InvoiceTotals, error) {
	return repository.InvoiceTotals{}, nil
}

type stubPDF struct{}

func (stubPDF) GenerateInvoicePDF(context.Context, *entity.Invoice, *entity.Customer) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}
