package server

import (
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"` // "debug", "info", "warn", "error"
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Console collects the log entries of a single render so they can be sent
// back to the client
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
}

// NewConsole creates an empty console
func NewConsole() *Console {
	return &Console{}
}

// Core returns a zap core that records entries at or above level
func (c *Console) Core(level zapcore.LevelEnabler) zapcore.Core {
	return &consoleCore{LevelEnabler: level, console: c}
}

// Messages returns a copy of the recorded messages in order
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

func (c *Console) add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

type consoleCore struct {
	zapcore.LevelEnabler
	console *Console
	fields  []zapcore.Field
}

func (cc *consoleCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *cc
	clone.fields = append(append([]zapcore.Field(nil), cc.fields...), fields...)
	return &clone
}

func (cc *consoleCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if cc.Enabled(ent.Level) {
		return ce.AddCore(ent, cc)
	}
	return ce
}

func (cc *consoleCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := ConsoleMessage{
		Message:   ent.Message,
		Timestamp: ent.Time,
		Level:     ent.Level.String(),
	}

	if len(cc.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range cc.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		msg.Fields = enc.Fields
	}

	cc.console.add(msg)
	return nil
}

func (cc *consoleCore) Sync() error { return nil }
