package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	log := Logger{newLogger(&buf, "test-role")}

	log.Info().Str("extra", "value").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "value", entry["extra"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNop_Discards(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic or write anywhere.
	log.Error().Msg("dropped")
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{newLogger(&buf, "parent")}

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	child.Info().Msg("from child")

	assert.Contains(t, buf.String(), `"role":"parent"`)
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{newLogger(&buf, "ctx-role")}

	ctx := log.WithContext(context.Background())
	FromContext(ctx).Info().Msg("via context")

	assert.Contains(t, buf.String(), `"role":"ctx-role"`)
	assert.Contains(t, buf.String(), "via context")
}
