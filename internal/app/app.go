package app

import (
	"context"
	"fmt"

	"fraglens/internal/config"
	"fraglens/internal/fragment"
	"fraglens/internal/pipeline"
	"fraglens/internal/prefs"
	"fraglens/internal/score"
	"fraglens/internal/ui"
)

const eventBufferSize = 2

// Options configure the fraglens application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/fraglens/prefs.toml

	Question string
	Files    []string

	// Overrides; zero values defer to the config file.
	URL               string
	Model             string
	Temperature       float64
	LinesPerBlock     int
	BlocksPerFragment int
	Theme             string
}

// Run boots the fraglens TUI until scoring finishes and the user quits,
// or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	userPrefs := prefs.Load(opts.PrefsPath)
	themeName := cfg.Theme
	if themeName == "" {
		themeName = userPrefs.Theme
	}

	fragments, err := fragment.LoadAll(opts.Files, cfg.LinesPerBlock, cfg.BlocksPerFragment)
	if err != nil {
		return err
	}

	client, err := score.NewClient(cfg.URL, cfg.Model, cfg.Temperature, opts.Question)
	if err != nil {
		return fmt.Errorf("init scoring client: %w", err)
	}

	events := make(chan pipeline.Event, eventBufferSize)

	// The pipeline runs beside the UI; a scoring failure surfaces as a
	// Failed event so the UI can tear down the terminal before exiting.
	go func() {
		if err := pipeline.Run(ctx, fragments, client, events); err != nil {
			select {
			case events <- pipeline.Failed{Err: err}:
			case <-ctx.Done():
			}
		}
	}()

	uiOpts := ui.Options{
		Events:    events,
		Total:     len(fragments),
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.URL != "" {
		cfg.URL = opts.URL
	}
	if opts.Model != "" {
		cfg.Model = opts.Model
	}
	if opts.Temperature > 0 {
		cfg.Temperature = opts.Temperature
	}
	if opts.LinesPerBlock > 0 {
		cfg.LinesPerBlock = opts.LinesPerBlock
	}
	if opts.BlocksPerFragment > 0 {
		cfg.BlocksPerFragment = opts.BlocksPerFragment
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
}
