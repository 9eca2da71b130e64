package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Info(action, message, requestID string, details map[string]interface{})
	Debug(action, message, requestID string, details map[string]interface{})
	Error(action, message, requestID string, details map[string]interface{}, err error)
}

type slogLogger struct {
	log *slog.Logger
}

// New writes JSON lines to stdout at debug level.
func New(service string) Logger {
	return NewWithWriter(service, os.Stdout, "debug")
}

// NewWithWriter writes JSON lines to w. Unknown levels fall back to info.
func NewWithWriter(service string, w io.Writer, level string) Logger {
	hostname, _ := os.Hostname()

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "timestamp"
			case slog.MessageKey:
				a.Key = "message"
			}
			return a
		},
	})

	return &slogLogger{
		log: slog.New(handler).With(
			slog.String("service", service),
			slog.String("hostname", hostname),
		),
	}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *slogLogger) Info(action, message, requestID string, details map[string]interface{}) {
	l.log.LogAttrs(context.Background(), slog.LevelInfo, message, attrs(action, requestID, details, nil)...)
}

func (l *slogLogger) Debug(action, message, requestID string, details map[string]interface{}) {
	l.log.LogAttrs(context.Background(), slog.LevelDebug, message, attrs(action, requestID, details, nil)...)
}

func (l *slogLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
	l.log.LogAttrs(context.Background(), slog.LevelError, message, attrs(action, requestID, details, err)...)
}

func attrs(action, requestID string, details map[string]interface{}, err error) []slog.Attr {
	out := []slog.Attr{
		slog.String("action", action),
		slog.String("request_id", requestID),
	}
	if len(details) > 0 {
		out = append(out, slog.Any("details", details))
	}
	if err != nil {
		out = append(out, slog.Any("error", ErrorInfo{Msg: err.Error()}))
	}
	return out
}
