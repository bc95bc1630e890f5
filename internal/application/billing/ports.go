package billing

import (
	"context"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// Revalidator marca como obsoletas las lecturas cacheadas de una ruta.
// Se invoca una sola vez por mutación exitosa y nunca en una rama de error.
type Revalidator interface {
	RevalidatePath(path string)
}

// InvoicePDFGenerator genera la representación en PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
