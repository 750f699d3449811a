package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLogger_EmptyPathIsNop(t *testing.T) {
	logger, err := newLogger("")
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	// A nop logger must absorb writes without side effects.
	logger.Debug("dropped")
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	logger, err := newLogger(path)
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	logger.Debug("hello from test")
	_ = logger.Sync()

	bytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(bytes) == 0 {
		t.Fatal("debug log file is empty")
	}
}
