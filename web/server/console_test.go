package server

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConsole_RecordsEntries(t *testing.T) {
	console := NewConsole()
	logger := zap.New(console.Core(zapcore.InfoLevel))

	logger.Info("Starting render", zap.Int("width", 4))
	logger.Warn("Texture unavailable")

	messages := console.Messages()
	require.Len(t, messages, 2)

	assert.Equal(t, "Starting render", messages[0].Message)
	assert.Equal(t, "info", messages[0].Level)
	assert.Equal(t, int64(4), messages[0].Fields["width"])
	assert.WithinDuration(t, time.Now(), messages[0].Timestamp, time.Second)

	assert.Equal(t, "warn", messages[1].Level)
	assert.Nil(t, messages[1].Fields)
}

func TestConsole_FiltersLevel(t *testing.T) {
	console := NewConsole()
	logger := zap.New(console.Core(zapcore.WarnLevel))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Error("shown")

	messages := console.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "shown", messages[0].Message)
}

func TestConsole_WithFields(t *testing.T) {
	console := NewConsole()
	logger := zap.New(console.Core(zapcore.InfoLevel)).With(zap.String("scene", "sphere"))

	logger.Info("Render complete", zap.Int("hits", 1))
	zap.New(console.Core(zapcore.InfoLevel)).Info("Unrelated")

	messages := console.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, map[string]interface{}{"scene": "sphere", "hits": int64(1)}, messages[0].Fields)
	assert.Nil(t, messages[1].Fields, "With must not leak into the parent core")
}

func TestConsole_MessagesIsACopy(t *testing.T) {
	console := NewConsole()
	logger := zap.New(console.Core(zapcore.InfoLevel))
	logger.Info("first")

	messages := console.Messages()
	logger.Info("second")

	assert.Len(t, messages, 1)
	assert.Len(t, console.Messages(), 2)
}

func TestConsoleMessage_JSONSerialization(t *testing.T) {
	msg := ConsoleMessage{
		Message:   "Render complete",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     "info",
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Render complete","timestamp":"2024-01-02T03:04:05Z","level":"info"}`, string(data))
}
