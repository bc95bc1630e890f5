package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// sampleInvoices genera facturas de ejemplo: dos por cliente, con montos y fechas deterministas
// (a partir de today hacia atrás) y estados alternados.
func sampleInvoices(customers []*entity.Customer, today time.Time) []*entity.Invoice {
	amounts := []int64{15795, 20348, 3040, 44800, 34577, 54246, 666, 32545, 1250, 8546, 500, 8945}
	out := make([]*entity.Invoice, 0, len(customers)*2)
	for i, c := range customers {
		for j := 0; j < 2; j++ {
			n := i*2 + j
			status := entity.InvoiceStatusPending
			if n%2 == 1 {
				status = entity.InvoiceStatusPaid
			}
			out = append(out, &entity.Invoice{
				ID:         uuid.New().String(),
				CustomerID: c.ID,
				Amount:     amounts[n%len(amounts)],
				Status:     status,
				Date:       today.AddDate(0, 0, -7*n),
			})
		}
	}
	return out
}
