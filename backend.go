package stackreport

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

type LogBackend interface {
	ShouldLogBeSkipped(level string) bool
	CreateLogRecord(level string, msg string) *LogRecord
	HandleRecord(rec *LogRecord)
	Println(message string)
}

type slogBackend struct {
	slog *slog.Logger
}

func (s *slogBackend) Println(message string) {
	println(message)
}

func (s *slogBackend) ShouldLogBeSkipped(level string) bool {
	return !s.slog.Handler().Enabled(context.Background(), convertToSlogLevel(level))
}

func (s *slogBackend) HandleRecord(rec *LogRecord) {
	// skip Callers, HandleRecord, log and the level wrapper so the
	// record points at the user call site
	var pcs [1]uintptr
	runtime.Callers(4, pcs[:])
	r := slog.NewRecord(time.Now(), convertToSlogLevel(rec.level), rec.msg, pcs[0])

	for key, value := range rec.attributes {
		r.AddAttrs(slog.Any(key, value))
	}

	_ = s.slog.Handler().Handle(context.Background(), r)
}

func (s *slogBackend) CreateLogRecord(level string, msg string) *LogRecord {
	return &LogRecord{
		level:      level,
		msg:        msg,
		attributes: make(map[string]any),
	}
}
