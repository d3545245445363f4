package runtimeinit

import (
	"fmt"
	"log"

	"screen-edge-offsets/src/clipboard"
	"screen-edge-offsets/src/config"
	"screen-edge-offsets/src/notification"
)

type Options struct {
	LoadOptions        config.LoadOptions
	SetupLogging       func(bool)
	ShowBlockingErrors bool
	// InitClipboard defaults to clipboard.Init.
	InitClipboard func() error
}

func Bootstrap(opts Options) (*config.Config, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.SetupLogging != nil {
		opts.SetupLogging(cfg.EnableFileLogging)
	}
	if cfg.EnvPath != "" {
		log.Printf("Loaded configuration from %s", cfg.EnvPath)
	}

	if cfg.CopyToClipboard {
		initClipboard := opts.InitClipboard
		if initClipboard == nil {
			initClipboard = clipboard.Init
		}
		if err := initClipboard(); err != nil {
			if opts.ShowBlockingErrors {
				notification.ShowBlockingError("Clipboard unavailable", fmt.Sprintf("Failed to initialize clipboard: %v\n\nSet COPY_TO_CLIPBOARD=false to run without it.", err))
			}
			return nil, fmt.Errorf("failed to initialize clipboard: %w", err)
		}
	}

	log.Printf("Configuration: output=%s backend=%s redraw=%s refresh_hz=%d copy=%v",
		cfg.Output, cfg.InputBackend, cfg.RedrawMode, cfg.RefreshHz, cfg.CopyToClipboard)
	return cfg, nil
}
