package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "production", "debug")

	log.Info().Str("numero", "010001").Msg("nota saved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "nota saved", entry["message"])
	assert.Equal(t, "010001", entry["numero"])
	assert.Equal(t, "notas", entry["service"])
}

func TestNewWithWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "production", "warn")

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	fallback := newWithWriter(&buf, "production", "nonsense")
	assert.Equal(t, zerolog.InfoLevel, fallback.GetLevel())
}
