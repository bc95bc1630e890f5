package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/invoice"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

// InvoicesPath ruta del listado de facturas: se revalida tras cada mutación y es el destino
// de la navegación después de crear o editar.
const InvoicesPath = "/dashboard/invoices"

// Mensajes de resultado de las mutaciones.
const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgCreateDBError       = "Database Error: Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgUpdateDBError       = "Database Error: Failed to Update Invoice."
	MsgDeleteDBError       = "Database Error: Failed to Delete Invoice."
	MsgDeleted             = "Deleted Invoice."
)

// ActionKind variante del resultado de una mutación.
type ActionKind int

const (
	// ActionFailed la mutación falló (validación o base de datos); State trae el detalle.
	ActionFailed ActionKind = iota
	// ActionRedirect la mutación se aplicó y el llamador debe navegar a Location.
	ActionRedirect
	// ActionCompleted la mutación se aplicó sin navegación; State.Message la describe.
	ActionCompleted
)

func (k ActionKind) String() string {
	switch k {
	case ActionFailed:
		return "failed"
	case ActionRedirect:
		return "redirect"
	case ActionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ActionResult resultado de CreateInvoice, UpdateInvoice o DeleteInvoice.
// La navegación es una variante propia (ActionRedirect) y no un error.
type ActionResult struct {
	Kind     ActionKind
	State    dto.InvoiceFormState
	Location string
}

func failed(errs invoice.FieldErrors, message string) ActionResult {
	return ActionResult{Kind: ActionFailed, State: dto.InvoiceFormState{Errors: errs, Message: message}}
}

func redirectTo(location string) ActionResult {
	return ActionResult{Kind: ActionRedirect, Location: location}
}

func completed(message string) ActionResult {
	return ActionResult{Kind: ActionCompleted, State: dto.InvoiceFormState{Message: message}}
}

// InvoiceUseCase crea, edita y elimina facturas a partir de datos de formulario no confiables.
// Orden estricto: validación → persistencia → revalidación → navegación.
type InvoiceUseCase struct {
	repo         repository.InvoiceRepository
	revalidator  Revalidator
	createSchema *invoice.Schema
	updateSchema *invoice.Schema
	log          *logger.Logger
	now          func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. Los esquemas se construyen una vez y se comparten.
func NewInvoiceUseCase(repo repository.InvoiceRepository, revalidator Revalidator, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:         repo,
		revalidator:  revalidator,
		createSchema: invoice.CreateSchema(),
		updateSchema: invoice.UpdateSchema(),
		log:          log.Component("invoices"),
		now:          time.Now,
	}
}

// SetClock reemplaza el reloj usado para fechar facturas nuevas.
func (uc *InvoiceUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// CreateInvoice valida el formulario e inserta la factura con la fecha de hoy.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, form invoice.FormData) ActionResult {
	fields, errs := uc.createSchema.Parse(form)
	if errs != nil {
		return failed(errs, MsgCreateMissingFields)
	}

	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: fields.CustomerID,
		Amount:     fields.AmountInCents(),
		Status:     fields.Status,
		Date:       today(uc.now()),
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		uc.log.Error().Err(err).Str("customer_id", inv.CustomerID).Msg("crear factura")
		return failed(nil, MsgCreateDBError)
	}

	uc.revalidator.RevalidatePath(InvoicesPath)
	return redirectTo(InvoicesPath)
}

// UpdateInvoice valida el formulario y actualiza cliente, monto y estado de la factura id.
// No verifica que id exista: si no coincide con ninguna fila la operación igual termina bien
// (se registra como warning).
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, id string, form invoice.FormData) ActionResult {
	fields, errs := uc.updateSchema.Parse(form)
	if errs != nil {
		return failed(errs, MsgUpdateMissingFields)
	}

	inv := &entity.Invoice{
		ID:         id,
		CustomerID: fields.CustomerID,
		Amount:     fields.AmountInCents(),
		Status:     fields.Status,
	}
	affected, err := uc.repo.Update(ctx, inv)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("actualizar factura")
		return failed(nil, MsgUpdateDBError)
	}
	if affected == 0 {
		uc.log.Warn().Str("invoice_id", id).Msg("actualizar factura: ninguna fila coincide con el id")
	}

	uc.revalidator.RevalidatePath(InvoicesPath)
	return redirectTo(InvoicesPath)
}

// DeleteInvoice elimina la factura id. No navega: se invoca desde el propio listado.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, id string) ActionResult {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("eliminar factura")
		return failed(nil, MsgDeleteDBError)
	}
	uc.revalidator.RevalidatePath(InvoicesPath)
	return completed(MsgDeleted)
}

// today devuelve la fecha de calendario (UTC) de t, sin hora.
func today(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
