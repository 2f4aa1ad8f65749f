// Package logger builds the logfmt logger shared by every component.
package logger

import (
	"fmt"
	"io"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// New creates a logfmt logger writing to w with timestamp and caller
// information. Entries below lvl are dropped.
func New(w io.Writer, lvl string) (gokitlog.Logger, error) {
	option, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}

	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
	logger = level.NewFilter(logger, option)
	logger = gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)
	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() gokitlog.Logger {
	return gokitlog.NewNopLogger()
}

// ValidLevel reports whether lvl is a level accepted by New.
func ValidLevel(lvl string) bool {
	_, err := levelOption(lvl)
	return err == nil
}

func levelOption(lvl string) (level.Option, error) {
	switch lvl {
	case LevelDebug:
		return level.AllowDebug(), nil
	case LevelInfo:
		return level.AllowInfo(), nil
	case LevelWarn:
		return level.AllowWarn(), nil
	case LevelError:
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
}
