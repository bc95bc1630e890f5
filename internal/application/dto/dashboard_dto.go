package dto

// DashboardSummaryDTO respuesta de GET /dashboard: tarjetas y últimas facturas.
type DashboardSummaryDTO struct {
	NumberOfInvoices  int                `json:"number_of_invoices"`
	NumberOfCustomers int                `json:"number_of_customers"`
	TotalPaid         string             `json:"total_paid_invoices"`
	TotalPending      string             `json:"total_pending_invoices"`
	LatestInvoices    []LatestInvoiceDTO `json:"latest_invoices"`
}

// LatestInvoiceDTO fila del widget de últimas facturas.
type LatestInvoiceDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}
