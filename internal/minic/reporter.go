package minic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// LogReporter turns every reported error into a structured log record.
type LogReporter struct {
	logger *slog.Logger
	level  slog.Level
	hadErr bool
}

// NewLogReporter creates a reporter logging at the given level.
func NewLogReporter(logger *slog.Logger, level slog.Level) Reporter {
	return &LogReporter{logger: logger, level: level}
}

func (reporter *LogReporter) Report(err error) {
	reporter.hadErr = true

	args := []interface{}{"error", err.Error()}
	var scanErr *ScanError
	var parseErr *ParseError
	switch {
	case errors.As(err, &scanErr):
		args = append(args, "char", string(scanErr.Char()))
	case errors.As(err, &parseErr):
		args = append(args, "kind", parseErr.Kind.String())
		if parseErr.Token != nil {
			args = append(args, "token", parseErr.Token.String())
		}
	}
	reporter.logger.Log(context.Background(), reporter.level, "report", args...)
}

func (reporter *LogReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *LogReporter) Reset() {
	reporter.hadErr = false
}
