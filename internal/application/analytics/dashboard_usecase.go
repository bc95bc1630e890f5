// Package analytics contiene el caso de uso de la página principal del dashboard.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/pkg/currency"
)

const latestInvoicesLimit = 5 // filas del widget de últimas facturas

// DashboardUseCase genera las tarjetas y el widget de últimas facturas.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) y el listado de facturas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	invoiceRepo   repository.InvoiceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, invoiceRepo repository.InvoiceRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, invoiceRepo: invoiceRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. CountInvoices
//  2. CountCustomers
//  3. SumByStatus     → TotalPaid + TotalPending
//  4. ListLatest(5)   → LatestInvoices
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		invoices  int
		customers int
		totals    repository.InvoiceTotals
		latest    []*repository.InvoiceRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		invoices, err = uc.analyticsRepo.CountInvoices(gctx)
		return wrap("conteo de facturas", err)
	})
	g.Go(func() (err error) {
		customers, err = uc.analyticsRepo.CountCustomers(gctx)
		return wrap("conteo de clientes", err)
	})
	g.Go(func() (err error) {
		totals, err = uc.analyticsRepo.SumByStatus(gctx)
		return wrap("totales por estado", err)
	})
	g.Go(func() (err error) {
		latest, err = uc.invoiceRepo.ListLatest(gctx, latestInvoicesLimit)
		return wrap("últimas facturas", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		NumberOfInvoices:  invoices,
		NumberOfCustomers: customers,
		TotalPaid:         currency.FormatCents(totals.Paid.Round(0).IntPart()),
		TotalPending:      currency.FormatCents(totals.Pending.Round(0).IntPart()),
		LatestInvoices:    make([]dto.LatestInvoiceDTO, 0, len(latest)),
	}
	for _, r := range latest {
		out.LatestInvoices = append(out.LatestInvoices, dto.LatestInvoiceDTO{
			ID:       r.ID,
			Name:     r.CustomerName,
			Email:    r.CustomerEmail,
			ImageURL: r.ImageURL,
			Amount:   currency.FormatCents(r.Amount),
		})
	}
	return out, nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dashboard: %s: %w", what, err)
}
