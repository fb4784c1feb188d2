package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/phrazzld/courseforge-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log, err := setup(config.ServerConfig{Port: 8080, LogLevel: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("should be filtered out")
	log.Warn("should appear")

	output := buf.String()
	assert.NotContains(t, output, "should be filtered out")
	assert.Contains(t, output, "should appear")
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	log, err := setup(config.ServerConfig{Port: 8080, LogLevel: "info"}, &buf)
	require.NoError(t, err)

	log.Info("structured message", "topic_id", "business_communication")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "structured message", entry["msg"])
	assert.Equal(t, "business_communication", entry["topic_id"])
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer

	log, err := setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"}, &buf)
	require.NoError(t, err)

	log.Debug("debug is below the fallback level")
	log.Info("info passes")

	output := buf.String()
	assert.NotContains(t, output, "debug is below the fallback level")
	assert.Contains(t, output, "info passes")
}
