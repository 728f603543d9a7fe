package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session identifies this process in crash reports and logs.
var Session = uuid.New()

// CrashReport writes a crash file for a recovered panic value and returns
// its path.
func CrashReport(dir string, recovered any, stack []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating crash dir: %w", err)
	}
	now := time.Now().UTC()
	path := filepath.Join(dir, fmt.Sprintf("crash_%s_%s.txt", now.Format("20060102T150405"), Session.String()[:8]))

	body := fmt.Sprintf("time: %s\nsession: %s\npanic: %v\n\n%s",
		now.Format(time.RFC3339), Session, recovered, stack)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", fmt.Errorf("writing crash report: %w", err)
	}
	return path, nil
}

// CaptureCrash is deferred at the top of a goroutine. On panic it writes a
// report, logs it and re-panics.
func CaptureCrash(log zerolog.Logger, dir string) {
	r := recover()
	if r == nil {
		return
	}
	path, err := CrashReport(dir, r, debug.Stack())
	if err != nil {
		log.Error().Err(err).Msg("could not save crash report")
	} else {
		log.Error().Str("report", path).Interface("panic", r).Msg("crash detected")
	}
	panic(r)
}
