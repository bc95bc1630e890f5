package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// defaultCustomers clientes de ejemplo cuando no se pasa un CSV.
var defaultCustomers = []entity.Customer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// readCustomersCSV lee clientes desde un CSV con cabecera name,email[,image_url[,id]].
// Con latin1 el archivo se decodifica desde ISO-8859-1 (exportaciones de hojas de cálculo antiguas).
// Filas sin id reciben un UUID nuevo.
func readCustomersCSV(r io.Reader, latin1 bool) ([]*entity.Customer, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, errors.New("falta la columna name")
	}
	if _, ok := cols["email"]; !ok {
		return nil, errors.New("falta la columna email")
	}
	get := func(rec []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []*entity.Customer
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		c := &entity.Customer{
			ID:       get(rec, "id"),
			Name:     get(rec, "name"),
			Email:    get(rec, "email"),
			ImageURL: get(rec, "image_url"),
		}
		if c.Name == "" || c.Email == "" {
			return nil, fmt.Errorf("línea %d: name y email son requeridos", line)
		}
		if c.ID == "" {
			c.ID = uuid.New().String()
		} else if _, err := uuid.Parse(c.ID); err != nil {
			return nil, fmt.Errorf("línea %d: id inválido %q", line, c.ID)
		}
		out = append(out, c)
	}
	return out, nil
}
