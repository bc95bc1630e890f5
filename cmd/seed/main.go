// seed aplica las migraciones y carga datos de ejemplo: el usuario inicial, clientes y facturas.
//
// Uso: go run ./cmd/seed [clientes.csv] [latin1]
// Sin CSV usa un conjunto fijo de clientes. Con "latin1" el CSV se lee como ISO-8859-1.
// Usuario inicial: SEED_USER_EMAIL / SEED_USER_PASSWORD (por defecto user@nextmail.com / 123456).
package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/invoice-dashboard/pkg/config"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	// 1. Usuario inicial
	email := envOr("SEED_USER_EMAIL", "user@nextmail.com")
	password := envOr("SEED_USER_PASSWORD", "123456")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}
	userRepo := postgres.NewUserRepository(pool)
	err = userRepo.Create(ctx, &entity.User{ID: uuid.New().String(), Name: "User", Email: email, PasswordHash: string(hash)})
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		log.Info().Str("email", email).Msg("usuario ya existe")
	case err != nil:
		log.Fatal().Err(err).Msg("crear usuario")
	default:
		log.Info().Str("email", email).Msg("usuario creado")
	}

	// 2. Clientes
	customers, err := loadCustomers(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("leer clientes")
	}
	customerRepo := postgres.NewCustomerRepository(pool)
	var created []*entity.Customer
	for _, c := range customers {
		if err := customerRepo.Create(ctx, c); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			log.Fatal().Err(err).Str("customer", c.Name).Msg("crear cliente")
		}
		created = append(created, c)
	}
	log.Info().Int("nuevos", len(created)).Int("total", len(customers)).Msg("clientes")

	// 3. Facturas de ejemplo, solo para clientes nuevos
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	invoices := sampleInvoices(created, today)
	for _, inv := range invoices {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			log.Fatal().Err(err).Str("customer_id", inv.CustomerID).Msg("crear factura")
		}
	}
	log.Info().Int("facturas", len(invoices)).Msg("seed completo")
}

func loadCustomers(args []string) ([]*entity.Customer, error) {
	if len(args) == 0 {
		out := make([]*entity.Customer, 0, len(defaultCustomers))
		for i := range defaultCustomers {
			c := defaultCustomers[i]
			out = append(out, &c)
		}
		return out, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	latin1 := len(args) > 1 && strings.EqualFold(args[1], "latin1")
	return readCustomersCSV(f, latin1)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
