package entity

// Customer representa un cliente al que se le emiten facturas (solo lectura para el dashboard).
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
