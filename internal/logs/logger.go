package logs

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects the sinks of a logger. The terminal sink is always on.
type Options struct {
	Level slog.Level
	// File receives JSON records when non-nil.
	File io.Writer
	// Journal adds a systemd journal sink when the journal is reachable.
	Journal bool
}

// New builds a logger fanning out every record to the configured sinks.
func New(writer io.Writer, opts Options) *slog.Logger {
	level := new(slog.LevelVar)
	level.Set(opts.Level)

	var handlers []slog.Handler

	// local
	terminalHandler := slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	handlers = append(handlers, terminalHandler)

	if opts.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(
			opts.File,
			&slog.HandlerOptions{
				Level: level,
			},
		))
	}

	// systemd journal
	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// ParseLevel accepts the level names used in configuration files.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(name))
	return level, err
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
