package billing

import (
	"context"
	"strings"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/pkg/currency"
)

// CustomerUseCase casos de uso de lectura para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// ListFiltered clientes cuyo nombre o email coincide con query, con sus totales de facturación.
func (uc *CustomerUseCase) ListFiltered(ctx context.Context, query string) ([]dto.CustomerTableRow, error) {
	list, err := uc.repo.ListFiltered(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerTableRow, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerTableRow{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  currency.FormatCents(c.TotalPending),
			TotalPaid:     currency.FormatCents(c.TotalPaid),
		})
	}
	return out, nil
}
