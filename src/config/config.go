package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvFileEnvVar = "EDGE_OFFSETS_ENV"

	OutputDialog = "dialog"
	OutputStdout = "stdout"
	OutputJSON   = "json"

	RedrawChange = "change"
	RedrawTimer  = "timer"

	BackendOverlay = "overlay"
	BackendHook    = "hook"
)

// LoadOptions carry command-line overrides. Empty strings and nil pointers
// leave the environment value in place.
type LoadOptions struct {
	OutputOverride     string
	RedrawModeOverride string
	BackendOverride    string
	CopyOverride       *bool
}

type Config struct {
	EnableFileLogging bool
	RedrawMode        string
	// RefreshHz overrides the detected monitor refresh rate; 0 means detect.
	RefreshHz       int
	Output          string
	CopyToClipboard bool
	InputBackend    string
	EnvPath         string
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use EDGE_OFFSETS_ENV env var as a path to a config file
	// Variables already set in the process environment win over the file.
	envPath := resolveEnvPath()
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	refreshHz := 0
	if v := os.Getenv("REFRESH_HZ"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			refreshHz = n
		}
	}

	copyToClipboard := parseBool(os.Getenv("COPY_TO_CLIPBOARD"))
	if opts.CopyOverride != nil {
		copyToClipboard = *opts.CopyOverride
	}

	cfg := &Config{
		EnableFileLogging: parseBool(os.Getenv("ENABLE_FILE_LOGGING")),
		RedrawMode:        resolveRedrawMode(override(opts.RedrawModeOverride, os.Getenv("REDRAW_MODE"))),
		RefreshHz:         refreshHz,
		Output:            resolveOutput(override(opts.OutputOverride, os.Getenv("OUTPUT"))),
		CopyToClipboard:   copyToClipboard,
		InputBackend:      resolveBackend(override(opts.BackendOverride, os.Getenv("INPUT_BACKEND"))),
		EnvPath:           envPath,
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	execDir := filepath.Dir(execPath)
	exeEnv := filepath.Join(execDir, ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvFileEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func override(flagValue, envValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return envValue
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

func resolveOutput(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case OutputStdout:
		return OutputStdout
	case OutputJSON:
		return OutputJSON
	default:
		return OutputDialog
	}
}

func resolveRedrawMode(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case RedrawTimer, "vsync":
		return RedrawTimer
	default:
		return RedrawChange
	}
}

func resolveBackend(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case BackendOverlay:
		return BackendOverlay
	case BackendHook:
		return BackendHook
	}
	if runtime.GOOS == "windows" {
		return BackendOverlay
	}
	return BackendHook
}
