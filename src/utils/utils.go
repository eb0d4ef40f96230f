package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xyproto/randomstring"

	"elevbank/src/dispatcher"
	"elevbank/src/elev"
)

const runIDLen = 6

// InitLogger installs the default slog logger. Output goes to stderr, and also to
// <dir>/run-<id>.log when dir is set. It returns the run id and a close func for the file.
func InitLogger(level slog.Level, dir string) (string, func() error, error) {
	runID := randomstring.EnglishFrequencyString(runIDLen)
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", nil, fmt.Errorf("creating log dir: %w", err)
		}
		logFile, err := os.OpenFile(filepath.Join(dir, "run-"+runID+".log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return "", nil, fmt.Errorf("opening log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, logFile)
		closeFn = logFile.Close
	}

	slog.SetDefault(slog.New(NewHandler(w, level)))
	return runID, closeFn, nil
}

// NewHandler is a text handler with short timestamps and file:line sources.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
}

// StatusLine summarizes a report on one line for the hotkey console.
func StatusLine(r dispatcher.BuildingReport) string {
	var moving, doorsOpen, waiting int
	for _, car := range r.Cars {
		switch car.Status() {
		case elev.Moving:
			moving++
		case elev.DoorOpen:
			doorsOpen++
		case elev.WaitingAtTerminus:
			waiting++
		}
	}
	return fmt.Sprintf("Tick %d | %v | moving %d, doors open %d, waiting %d | up %d, down %d",
		r.Ticks, r.State, moving, doorsOpen, waiting, len(r.Up), len(r.Down))
}

// PrintStatus overwrites the current terminal line with the status line.
func PrintStatus(w io.Writer, r dispatcher.BuildingReport) {
	fmt.Fprintf(w, "\r%s    \r", StatusLine(r))
}
