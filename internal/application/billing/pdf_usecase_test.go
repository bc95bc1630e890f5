package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

type fakePDFGenerator struct {
	invoice  *entity.Invoice
	customer *entity.Customer
}

func (g *fakePDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, c *entity.Customer) ([]byte, error) {
	g.invoice, g.customer = inv, c
	return []byte("%PDF-1.3"), nil
}

func TestDownloadInvoicePDF(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.invoices[validID] = &entity.Invoice{ID: validID, CustomerID: "c1", Amount: 100, Status: "paid"}
	customers := &fakeCustomerRepo{customers: []*entity.Customer{{ID: "c1", Name: "Evil Rabbit"}}}
	gen := &fakePDFGenerator{}
	uc := billing.NewPDFUseCase(repo, customers, gen)

	out, err := uc.DownloadInvoicePDF(context.Background(), validID)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), out)
	assert.Equal(t, "Evil Rabbit", gen.customer.Name)
	assert.Equal(t, validID, gen.invoice.ID)
}

func TestDownloadInvoicePDF_NoEncontrada(t *testing.T) {
	gen := &fakePDFGenerator{}
	uc := billing.NewPDFUseCase(newFakeInvoiceRepo(), &fakeCustomerRepo{}, gen)

	_, err := uc.DownloadInvoicePDF(context.Background(), validID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.DownloadInvoicePDF(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, gen.invoice)
}
