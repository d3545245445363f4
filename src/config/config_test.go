package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("ENABLE_FILE_LOGGING", "true")
	t.Setenv("REDRAW_MODE", "timer")
	t.Setenv("REFRESH_HZ", "144")
	t.Setenv("OUTPUT", "json")
	t.Setenv("COPY_TO_CLIPBOARD", "1")
	t.Setenv("INPUT_BACKEND", "hook")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to be true, got %v", cfg.EnableFileLogging)
	}
	if cfg.RedrawMode != RedrawTimer {
		t.Errorf("Expected RedrawMode to be %q, got %q", RedrawTimer, cfg.RedrawMode)
	}
	if cfg.RefreshHz != 144 {
		t.Errorf("Expected RefreshHz to be 144, got %d", cfg.RefreshHz)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Expected Output to be %q, got %q", OutputJSON, cfg.Output)
	}
	if !cfg.CopyToClipboard {
		t.Errorf("Expected CopyToClipboard to be true")
	}
	if cfg.InputBackend != BackendHook {
		t.Errorf("Expected InputBackend to be %q, got %q", BackendHook, cfg.InputBackend)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENABLE_FILE_LOGGING", "REDRAW_MODE", "REFRESH_HZ", "OUTPUT", "COPY_TO_CLIPBOARD", "INPUT_BACKEND", EnvFileEnvVar} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.EnableFileLogging || cfg.CopyToClipboard {
		t.Errorf("Expected boolean options to default to false, got %+v", cfg)
	}
	if cfg.RedrawMode != RedrawChange {
		t.Errorf("Expected RedrawMode %q, got %q", RedrawChange, cfg.RedrawMode)
	}
	if cfg.RefreshHz != 0 {
		t.Errorf("Expected RefreshHz 0, got %d", cfg.RefreshHz)
	}
	if cfg.Output != OutputDialog {
		t.Errorf("Expected Output %q, got %q", OutputDialog, cfg.Output)
	}
	wantBackend := BackendHook
	if runtime.GOOS == "windows" {
		wantBackend = BackendOverlay
	}
	if cfg.InputBackend != wantBackend {
		t.Errorf("Expected InputBackend %q, got %q", wantBackend, cfg.InputBackend)
	}
}

func TestLoadWithOptionsOverrides(t *testing.T) {
	t.Setenv("OUTPUT", "dialog")
	t.Setenv("REDRAW_MODE", "change")
	t.Setenv("COPY_TO_CLIPBOARD", "true")
	t.Setenv("INPUT_BACKEND", "hook")

	noCopy := false
	cfg, err := LoadWithOptions(LoadOptions{
		OutputOverride:     "stdout",
		RedrawModeOverride: "vsync",
		BackendOverride:    "overlay",
		CopyOverride:       &noCopy,
	})
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Output != OutputStdout {
		t.Errorf("Expected Output %q, got %q", OutputStdout, cfg.Output)
	}
	if cfg.RedrawMode != RedrawTimer {
		t.Errorf("Expected RedrawMode %q, got %q", RedrawTimer, cfg.RedrawMode)
	}
	if cfg.InputBackend != BackendOverlay {
		t.Errorf("Expected InputBackend %q, got %q", BackendOverlay, cfg.InputBackend)
	}
	if cfg.CopyToClipboard {
		t.Errorf("Expected CopyOverride to disable clipboard copy")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"OUTPUT", "REFRESH_HZ"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), "edge.env")
	if err := os.WriteFile(path, []byte("OUTPUT=json\nREFRESH_HZ=75\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv(EnvFileEnvVar, path)
	t.Cleanup(func() {
		os.Unsetenv("OUTPUT")
		os.Unsetenv("REFRESH_HZ")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.EnvPath != path {
		t.Skipf("a .env beside the test binary takes precedence (%s)", cfg.EnvPath)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Expected Output %q from env file, got %q", OutputJSON, cfg.Output)
	}
	if cfg.RefreshHz != 75 {
		t.Errorf("Expected RefreshHz 75 from env file, got %d", cfg.RefreshHz)
	}
}

func TestInvalidRefreshHzIgnored(t *testing.T) {
	for _, v := range []string{"abc", "-5", "0"} {
		t.Setenv("REFRESH_HZ", v)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Failed to load configuration: %v", err)
		}
		if cfg.RefreshHz != 0 {
			t.Errorf("REFRESH_HZ=%q: expected 0, got %d", v, cfg.RefreshHz)
		}
	}
}
