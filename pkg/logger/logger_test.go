package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Output: &buf})

	log.Named("gateway.productos").Info().Str("operation", "list").Msg("ok")
	log.Debug().Msg("descartado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "gateway.productos", entry["component"])
	assert.Equal(t, "list", entry["operation"])
	assert.Contains(t, entry, "time")
}

func TestNew_ConsolaEnDesarrollo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "development", Output: &buf})
	log.Warn().Msg("aviso")

	assert.Contains(t, buf.String(), "aviso")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("ruido"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Named("x").Error().Msg("nada") })
}
