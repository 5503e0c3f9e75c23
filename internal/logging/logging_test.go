package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NoPathIsNoop(t *testing.T) {
	logger, closeFn, err := New("", "info")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer closeFn()

	logger.Infow("discarded", "k", 1)
}

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, closeFn, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Debugw("auto-rotate started", "heading", 90)
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"auto-rotate started"`, `"heading":90`, `"logger":"gyrocompass"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %s", line, want)
		}
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, closeFn, err := New(path, "warn")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Infow("hidden")
	logger.Warnw("shown")
	closeFn()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn entry missing")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New(filepath.Join(t.TempDir(), "app.log"), "chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}
