package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Config selects where and whether diagnostic records are written
type Config struct {
	Debug  bool
	Writer io.Writer // defaults to os.Stderr
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger. Without Debug every record is discarded,
// so a normal run stays silent.
func Setup(cfg Config) {
	if !cfg.Debug {
		mu.Lock()
		global = discard()
		mu.Unlock()
		return
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()
}

// L returns the logger installed by Setup
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
