// Package invoice contiene el esquema de validación de los formularios de factura.
//
// Todo dato de formulario llega como texto. El esquema convierte ese texto en un
// registro tipado (Fields) o en un mapa de errores por campo (FieldErrors); nunca
// ambos, y nunca hace panic ante entrada inválida.
package invoice

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// Nombres de campo tal como los envía el formulario.
const (
	FieldID         = "id"
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
	FieldDate       = "date"
)

// Mensajes por campo que se muestran junto al input que los produjo.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountPositive = "Please enter an amount greater than 0."
	MsgSelectStatus   = "Please select an invoice status."
	MsgInvalidID      = "Invalid invoice id."
	MsgInvalidDate    = "Invalid invoice date."
)

// DateLayout formato de fecha de calendario de las facturas.
const DateLayout = "2006-01-02"

// Rango de exponentes aceptado para amount. Con el coeficiente positivo, un exponente
// mayor ya excede int64 en centavos y uno menor exige más de 38 dígitos significativos.
// Se verifica antes de operar: Mul y Round materializan 10^|exp|.
const (
	minAmountExp = -40
	maxAmountExp = 20
)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// FormData datos crudos de un formulario: nombre de campo -> valor en texto.
// Un campo ausente no tiene clave en el mapa.
type FormData map[string]string

// Get devuelve el valor crudo del campo y si estaba presente.
func (f FormData) Get(field string) (string, bool) {
	v, ok := f[field]
	return v, ok
}

// FieldErrors mensajes de validación agrupados por campo.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Fields registro validado y tipado de un formulario de factura.
// Amount va en unidades mayores (ej. dólares); la conversión a centavos se hace con AmountInCents.
type Fields struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	Status     string
	Date       string
}

// AmountInCents convierte Amount a unidades menores: round(amount × 100).
func (f Fields) AmountInCents() int64 {
	return ToCents(f.Amount)
}

// rule valida un campo y, si es válido, escribe el valor convertido en out.
// Devuelve el mensaje de error o "" si el campo es válido.
type rule struct {
	field string
	apply func(raw string, present bool, out *Fields) string
}

// Schema conjunto ordenado de reglas por campo. Es inmutable: Omit devuelve un esquema nuevo,
// por lo que una instancia se puede compartir entre peticiones concurrentes.
type Schema struct {
	rules []rule
}

// FormSchema esquema completo del formulario de factura (incluye id y date).
func FormSchema() *Schema {
	return &Schema{rules: []rule{
		{field: FieldID, apply: requireID},
		{field: FieldCustomerID, apply: requireCustomer},
		{field: FieldAmount, apply: coerceAmount},
		{field: FieldStatus, apply: requireStatus},
		{field: FieldDate, apply: requireDate},
	}}
}

// CreateSchema esquema para crear facturas: id y date los asigna el servidor.
func CreateSchema() *Schema {
	return FormSchema().Omit(FieldID, FieldDate)
}

// UpdateSchema esquema para editar facturas: el id llega por la ruta, no por el formulario, y date es inmutable.
func UpdateSchema() *Schema {
	return FormSchema().Omit(FieldID, FieldDate)
}

// Omit devuelve una copia del esquema sin los campos indicados.
func (s *Schema) Omit(fields ...string) *Schema {
	skip := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		skip[f] = struct{}{}
	}
	out := &Schema{rules: make([]rule, 0, len(s.rules))}
	for _, r := range s.rules {
		if _, ok := skip[r.field]; ok {
			continue
		}
		out.rules = append(out.rules, r)
	}
	return out
}

// Fields nombres de los campos que valida el esquema, en orden.
func (s *Schema) Fields() []string {
	names := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		names = append(names, r.field)
	}
	return names
}

// Parse valida in contra todas las reglas y reporta todos los errores a la vez.
// Si hay errores devuelve Fields vacío y FieldErrors no nil; si no, FieldErrors es nil.
func (s *Schema) Parse(in FormData) (Fields, FieldErrors) {
	var out Fields
	errs := FieldErrors{}
	for _, r := range s.rules {
		raw, present := in.Get(r.field)
		if msg := r.apply(raw, present, &out); msg != "" {
			errs.add(r.field, msg)
		}
	}
	if len(errs) > 0 {
		return Fields{}, errs
	}
	return out, nil
}

// CoerceAmount convierte texto a número como lo hace un input numérico: espacios alrededor
// se ignoran y el texto vacío vale 0. Devuelve false si el texto no es numérico.
func CoerceAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ToCents convierte un monto en unidades mayores a centavos, redondeando al entero más cercano.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromCents convierte centavos a unidades mayores.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

func requireID(raw string, present bool, out *Fields) string {
	id := strings.TrimSpace(raw)
	if !present || id == "" {
		return MsgInvalidID
	}
	out.ID = id
	return ""
}

func requireCustomer(raw string, present bool, out *Fields) string {
	id := strings.TrimSpace(raw)
	if !present || id == "" {
		return MsgSelectCustomer
	}
	out.CustomerID = id
	return ""
}

// coerceAmount: ausente o vacío vale 0 y falla por "> 0", no por "requerido".
// También rechaza montos que redondeados a centavos quedan en 0 o no caben en int64.
func coerceAmount(raw string, _ bool, out *Fields) string {
	amount, ok := CoerceAmount(raw)
	if !ok || !amount.IsPositive() {
		return MsgAmountPositive
	}
	if exp := amount.Exponent(); exp < minAmountExp || exp > maxAmountExp {
		return MsgAmountPositive
	}
	cents := amount.Mul(hundred).Round(0)
	if cents.LessThan(decimal.NewFromInt(1)) || cents.GreaterThan(maxCents) {
		return MsgAmountPositive
	}
	out.Amount = amount
	return ""
}

func requireStatus(raw string, present bool, out *Fields) string {
	if !present || !entity.IsValidInvoiceStatus(raw) {
		return MsgSelectStatus
	}
	out.Status = raw
	return ""
}

func requireDate(raw string, present bool, out *Fields) string {
	if !present {
		return MsgInvalidDate
	}
	if _, err := time.Parse(DateLayout, strings.TrimSpace(raw)); err != nil {
		return MsgInvalidDate
	}
	out.Date = strings.TrimSpace(raw)
	return ""
}
