package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	maxSizeBytes = 10 * 1024 * 1024 // 10 MB
	maxArchives  = 3
)

// logFileName is relative to the working directory.
var logFileName = "edge_offsets_debug.log"

// Setup enables file logging with basic size-based rotation (10MB, max 3 files).
// When disabled, logs are discarded (keeps stdout clean for --output stdout).
func Setup(enableFileLogging bool) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if !enableFileLogging {
		log.SetOutput(io.Discard)
		return
	}
	rotateIfNeeded()
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return
	}
	log.SetOutput(&rotatingWriter{f: f})
}

// SetupWriter sends logs to w, or discards them when w is nil.
func SetupWriter(w io.Writer) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if w == nil {
		w = io.Discard
	}
	log.SetOutput(w)
}

type rotatingWriter struct{ f *os.File }

func (w *rotatingWriter) Write(p []byte) (int, error) {
	// naive rotation check per write
	if st, err := w.f.Stat(); err == nil && st.Size()+int64(len(p)) > maxSizeBytes {
		_ = w.f.Close()
		rotate()
		nf, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return 0, err
		}
		w.f = nf
	}
	return w.f.Write(p)
}

func rotateIfNeeded() {
	if st, err := os.Stat(logFileName); err == nil && st.Size() > maxSizeBytes {
		rotate()
	}
}

// rotate shifts archives: .1, .2, .3 (oldest discarded).
func rotate() {
	_ = os.Remove(archiveName(maxArchives))
	for i := maxArchives - 1; i >= 1; i-- {
		_ = os.Rename(archiveName(i), archiveName(i+1))
	}
	_ = os.Rename(logFileName, archiveName(1))
}

func archiveName(n int) string { return fmt.Sprintf("%s.%d", logFileName, n) }
