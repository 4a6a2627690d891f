package stackreport

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrorField is the attribute key the logger inspects for report errors.
const ErrorField = "error"

// reportField carries the debug rendering in file records. The console
// handler drops it and prints the backtrace as plain text instead.
const reportField = "report"

// Reported is implemented by error-report containers. Error() is expected
// to be the display rendering of the held error and DebugReport() the
// debug rendering, backtrace included when the switch enables it.
type Reported interface {
	error
	DebugReport() string
}

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// NewLogger builds a logger that fans out to a rotating JSON log file and
// a colored console. Errors implementing Reported get their full debug
// rendering attached to the file record and echoed to the console.
func NewLogger(cfg Config) Logger {
	logDir := filepath.Dir(cfg.LogFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		panic(fmt.Sprintf("failed to create log directory: %v", err))
	}

	logFile := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: 0,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	level := convertToSlogLevel(cfg.Level)

	fileHandler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	consoleHandler := tint.NewHandler(os.Stdout, &tint.Options{
		AddSource:   true,
		Level:       level,
		NoColor:     cfg.NoColor,
		TimeFormat:  "2006-01-02 15:04:05.000",
		ReplaceAttr: dropReport,
	})

	logger := slog.New(multiHandler{fileHandler, consoleHandler})
	return &loggerImpl{
		backend:           &slogBackend{slog: logger},
		warnOnPlainErrors: cfg.WarnOnPlainErrors,
	}
}

func dropReport(groups []string, a slog.Attr) slog.Attr {
	if a.Key == reportField {
		return slog.Attr{}
	}
	return a
}

func convertToSlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type loggerImpl struct {
	backend           LogBackend
	warnOnPlainErrors bool
}

func (l *loggerImpl) log(level string, msg string, kv ...any) {
	if l.backend.ShouldLogBeSkipped(level) {
		return
	}

	rec := l.backend.CreateLogRecord(level, msg)
	var debug string

	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			l.Warn("invalid key type in log message, must always be string")
			continue
		}

		if key == ErrorField {
			if rep, ok := kv[i+1].(Reported); ok {
				rec.AddAttrs(ErrorField, rep.Error())
				debug = rep.DebugReport()
				rec.AddAttrs(reportField, debug)
				continue
			}
			if l.warnOnPlainErrors {
				l.Warn("error attribute carries no diagnostic context")
			}
		}
		rec.AddAttrs(key, kv[i+1])
	}

	l.backend.HandleRecord(rec)
	if debug != "" {
		l.backend.Println(debug)
	}
}

func (l *loggerImpl) Debug(msg string, kv ...any) { l.log("debug", msg, kv...) }
func (l *loggerImpl) Info(msg string, kv ...any)  { l.log("info", msg, kv...) }
func (l *loggerImpl) Warn(msg string, kv ...any)  { l.log("warn", msg, kv...) }
func (l *loggerImpl) Error(msg string, kv ...any) { l.log("error", msg, kv...) }
