package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/invoice"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

var fixedNow = time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)

func newUseCase(repo *fakeInvoiceRepo, rv *fakeRevalidator) *billing.InvoiceUseCase {
	uc := billing.NewInvoiceUseCase(repo, rv, logger.Nop())
	uc.SetClock(func() time.Time { return fixedNow })
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_PersisteEnCentavosYRedirige(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	uc := newUseCase(repo, rv)

	res := uc.CreateInvoice(context.Background(), invoice.FormData{
		"customerId": "c1", "amount": "45.50", "status": "pending",
	})

	require.Equal(t, billing.ActionRedirect, res.Kind)
	assert.Equal(t, "/dashboard/invoices", res.Location)
	assert.Empty(t, res.State.Message)

	inv := repo.only()
	require.NotNil(t, inv)
	assert.NotEmpty(t, inv.ID, "el id lo asigna el servidor")
	assert.Equal(t, "c1", inv.CustomerID)
	assert.Equal(t, int64(4550), inv.Amount)
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), inv.Date)

	assert.Equal(t, []string{"/dashboard/invoices"}, rv.paths, "exactamente una revalidación")
}

func TestCreateInvoice_ErroresDeValidacionSinTocarDB(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	uc := newUseCase(repo, rv)

	res := uc.CreateInvoice(context.Background(), invoice.FormData{
		"customerId": "", "amount": "0", "status": "paid",
	})

	require.Equal(t, billing.ActionFailed, res.Kind)
	assert.Equal(t, billing.MsgCreateMissingFields, res.State.Message)
	assert.Equal(t, []string{invoice.MsgSelectCustomer}, res.State.Errors["customerId"])
	assert.Equal(t, []string{invoice.MsgAmountPositive}, res.State.Errors["amount"])
	assert.NotContains(t, res.State.Errors, "status")
	assert.Zero(t, repo.calls, "no debe haber acceso a la base de datos")
	assert.Empty(t, rv.paths)
	assert.Empty(t, res.Location)
}

func TestCreateInvoice_ErrorDeBaseDeDatos(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	repo.err = errors.New("insert or update on table \"invoices\" violates foreign key constraint")
	uc := newUseCase(repo, rv)

	res := uc.CreateInvoice(context.Background(), invoice.FormData{
		"customerId": "c-inexistente", "amount": "10", "status": "paid",
	})

	require.Equal(t, billing.ActionFailed, res.Kind)
	assert.Equal(t, billing.MsgCreateDBError, res.State.Message)
	assert.Nil(t, res.State.Errors, "un error de infraestructura no trae errores por campo")
	assert.NotContains(t, res.State.Message, "foreign key", "no se filtra la causa")
	assert.Equal(t, 1, repo.calls)
	assert.Empty(t, rv.paths)
	assert.Empty(t, res.Location)
}

func TestCreateInvoice_MontosValidos(t *testing.T) {
	cases := map[string]int64{
		"1":       100,
		"0.01":    1,
		"10.005":  1001,
		"1234.56": 123456,
		"99.999":  10000,
	}
	for raw, cents := range cases {
		t.Run(raw, func(t *testing.T) {
			repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
			res := newUseCase(repo, rv).CreateInvoice(context.Background(), invoice.FormData{
				"customerId": "c1", "amount": raw, "status": "paid",
			})
			require.Equal(t, billing.ActionRedirect, res.Kind)
			assert.Equal(t, cents, repo.only().Amount)
		})
	}
}

func TestCreateInvoice_MontosInvalidos(t *testing.T) {
	for _, raw := range []string{"", "0", "-1", "-0.5", "abc", "NaN"} {
		t.Run(raw, func(t *testing.T) {
			repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
			res := newUseCase(repo, rv).CreateInvoice(context.Background(), invoice.FormData{
				"customerId": "c1", "amount": raw, "status": "paid",
			})
			require.Equal(t, billing.ActionFailed, res.Kind)
			assert.Contains(t, res.State.Errors, "amount")
			assert.Zero(t, repo.calls)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateInvoice_NoModificaLaFecha(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	created := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	repo.invoices["i1"] = &entity.Invoice{ID: "i1", CustomerID: "c1", Amount: 100, Status: "pending", Date: created}
	uc := newUseCase(repo, rv)

	res := uc.UpdateInvoice(context.Background(), "i1", invoice.FormData{
		"customerId": "c2", "amount": "20.25", "status": "paid",
	})

	require.Equal(t, billing.ActionRedirect, res.Kind)
	assert.Equal(t, "/dashboard/invoices", res.Location)
	inv := repo.invoices["i1"]
	assert.Equal(t, "c2", inv.CustomerID)
	assert.Equal(t, int64(2025), inv.Amount)
	assert.Equal(t, "paid", inv.Status)
	assert.Equal(t, created, inv.Date)
	assert.Len(t, rv.paths, 1)
}

// Un id inexistente afecta 0 filas y se reporta como éxito: comportamiento permisivo intencional.
func TestUpdateInvoice_IDInexistenteTerminaBien(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	uc := newUseCase(repo, rv)

	res := uc.UpdateInvoice(context.Background(), "no-existe", invoice.FormData{
		"customerId": "c1", "amount": "5", "status": "pending",
	})

	assert.Equal(t, billing.ActionRedirect, res.Kind)
	assert.Equal(t, 1, repo.calls)
	assert.Len(t, rv.paths, 1)
}

func TestUpdateInvoice_ErroresDeValidacion(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	uc := newUseCase(repo, rv)

	res := uc.UpdateInvoice(context.Background(), "i1", invoice.FormData{"status": "overdue"})

	require.Equal(t, billing.ActionFailed, res.Kind)
	assert.Equal(t, billing.MsgUpdateMissingFields, res.State.Message)
	assert.Len(t, res.State.Errors, 3)
	assert.Zero(t, repo.calls)
	assert.Empty(t, rv.paths)
}

func TestUpdateInvoice_ErrorDeBaseDeDatos(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	repo.err = errors.New("connection refused")
	uc := newUseCase(repo, rv)

	res := uc.UpdateInvoice(context.Background(), "i1", invoice.FormData{
		"customerId": "c1", "amount": "5", "status": "pending",
	})

	require.Equal(t, billing.ActionFailed, res.Kind)
	assert.Equal(t, billing.MsgUpdateDBError, res.State.Message)
	assert.Nil(t, res.State.Errors)
	assert.Empty(t, rv.paths)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteInvoice_RevalidaSinNavegar(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	repo.invoices["i1"] = &entity.Invoice{ID: "i1"}
	uc := newUseCase(repo, rv)

	res := uc.DeleteInvoice(context.Background(), "i1")

	require.Equal(t, billing.ActionCompleted, res.Kind)
	assert.Equal(t, billing.MsgDeleted, res.State.Message)
	assert.Empty(t, res.Location)
	assert.NotContains(t, repo.invoices, "i1")
	assert.Equal(t, []string{"/dashboard/invoices"}, rv.paths)
}

func TestDeleteInvoice_ErrorDeBaseDeDatos(t *testing.T) {
	repo, rv := newFakeInvoiceRepo(), &fakeRevalidator{}
	repo.err = errors.New("timeout")
	uc := newUseCase(repo, rv)

	res := uc.DeleteInvoice(context.Background(), "i1")

	require.Equal(t, billing.ActionFailed, res.Kind)
	assert.Equal(t, billing.MsgDeleteDBError, res.State.Message)
	assert.Empty(t, rv.paths)
}

func TestActionKind_String(t *testing.T) {
	assert.Equal(t, "failed", billing.ActionFailed.String())
	assert.Equal(t, "redirect", billing.ActionRedirect.String())
	assert.Equal(t, "completed", billing.ActionCompleted.String())
}
