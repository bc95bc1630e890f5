package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "acme-dashboard", Output: &buf})

	l.Component("invoices").Warn().Str("invoice_id", "x").Msg("sin filas")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "warn", ev["level"])
	assert.Equal(t, "acme-dashboard", ev["service"])
	assert.Equal(t, "invoices", ev["component"])
	assert.Equal(t, "x", ev["invoice_id"])
	assert.Equal(t, "sin filas", ev["message"])
}

func TestNew_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "error", Output: &buf})

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len())
}
