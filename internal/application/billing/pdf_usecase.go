package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
)

// PDFUseCase genera el comprobante en PDF de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF busca la factura y su cliente y genera el PDF.
// Devuelve domain.ErrNotFound si la factura o el cliente no existen.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, id string) ([]byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv, customer)
}
