package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-dashboard/internal/application/analytics"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	invoices, customers int
	totals              repository.InvoiceTotals
	err                 error
}

func (f *fakeAnalyticsRepo) CountInvoices(context.Context) (int, error) { return f.invoices, f.err }
func (f *fakeAnalyticsRepo) CountCustomers(context.Context) (int, error) { return f.customers, nil }
func (f *fakeAnalyticsRepo) SumByStatus(context.Context) (repository.InvoiceTotals, error) {
	return f.totals, nil
}

type fakeInvoiceRepo struct {
	latest    []*repository.InvoiceRow
	lastLimit int
}

func (f *fakeInvoiceRepo) Create(context.Context, *entity.Invoice) error { return nil }
func (f *fakeInvoiceRepo) Update(context.Context, *entity.Invoice) (int64, error) { return 0, nil }
func (f *fakeInvoiceRepo) Delete(context.Context, string) error { return nil }
func (f *fakeInvoiceRepo) GetByID(context.Context, string) (*entity.Invoice, error) { return nil, nil }
func (f *fakeInvoiceRepo) ListFiltered(context.Context, string, int, int) ([]*repository.InvoiceRow, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) CountFiltered(context.Context, string) (int, error) { return 0, nil }
func (f *fakeInvoiceRepo) ListLatest(_ context.Context, limit int) ([]*repository.InvoiceRow, error) {
	f.lastLimit = limit
	return f.latest, nil
}

func TestGetSummary(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		invoices:  15,
		customers: 10,
		totals: repository.InvoiceTotals{
			Paid:    decimal.NewFromInt(9112900),
			Pending: decimal.NewFromInt(4588),
		},
	}
	invoiceRepo := &fakeInvoiceRepo{latest: []*repository.InvoiceRow{
		{ID: "i1", CustomerName: "Michael Novotny", CustomerEmail: "michael@novotny.com", Amount: 54246},
	}}
	uc := analytics.NewDashboardUseCase(analyticsRepo, invoiceRepo)

	out, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 15, out.NumberOfInvoices)
	assert.Equal(t, 10, out.NumberOfCustomers)
	assert.Equal(t, "$91,129.00", out.TotalPaid)
	assert.Equal(t, "$45.88", out.TotalPending)
	assert.Equal(t, 5, invoiceRepo.lastLimit)
	require.Len(t, out.LatestInvoices, 1)
	assert.Equal(t, "$542.46", out.LatestInvoices[0].Amount)
}

func TestGetSummary_Error(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{err: errors.New("down")}, &fakeInvoiceRepo{})

	_, err := uc.GetSummary(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conteo de facturas")
}
