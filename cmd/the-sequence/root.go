package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/the-sequence/audio"
	"github.com/lixenwraith/the-sequence/clock"
	"github.com/lixenwraith/the-sequence/config"
	"github.com/lixenwraith/the-sequence/display"
	"github.com/lixenwraith/the-sequence/logging"
	"github.com/lixenwraith/the-sequence/runner"
	"github.com/lixenwraith/the-sequence/sequence"
)

// rootOptions holds flag values; only flags set on the command line override the config
type rootOptions struct {
	configPath string
	debug      bool
	logFile    string
	sound      bool
	volume     float64
	interval   time.Duration
	from       uint64
	maxSteps   uint64

	lookupEnv func(string) (string, bool)
}

func newRootCommand(lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{lookupEnv: lookupEnv}

	cmd := &cobra.Command{
		Use:   "the-sequence",
		Short: "Count through the ordinals on a fullscreen terminal",
		Long: `Displays successive ordinals, one every π seconds, centered on a black screen.

The count runs through the naturals, then ω, ω+1, ..., ω⋅2, ..., ω², and on by
successor. Press Esc, q or Ctrl-C to stop.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runDisplay(cmd.Context(), cfg)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.BoolVar(&opts.debug, "debug", false, "write debug logs to the log file")
	f.StringVar(&opts.logFile, "log-file", "", "log file path (with --debug)")
	f.BoolVar(&opts.sound, "sound", false, "chime when ω, ω⋅2 and ω² are reached")
	f.Float64Var(&opts.volume, "volume", 0, "chime volume in [0, 1]")
	f.DurationVar(&opts.interval, "interval", 0, "delay between values (default π seconds)")
	f.Uint64Var(&opts.from, "from", 0, "start at this step instead of 0")
	f.Uint64Var(&opts.maxSteps, "max-steps", 0, "stop after this many values, 0 runs until interrupted")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newConfigCommand(opts))

	return cmd
}

// resolve applies defaults, then the config file, then the environment, then explicit flags
func (o *rootOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.lookupEnv != nil {
		if err := cfg.ApplyEnv(o.lookupEnv); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("debug") {
		cfg.Debug = o.debug
	}
	if f.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if f.Changed("sound") {
		cfg.Sound = o.sound
	}
	if f.Changed("volume") {
		cfg.Volume = o.volume
	}
	if f.Changed("interval") {
		cfg.Interval = o.interval
	}
	if f.Changed("from") {
		cfg.From = o.from
	}
	if f.Changed("max-steps") {
		cfg.MaxSteps = o.maxSteps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDisplay(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logger, err := logging.New(logging.Options{Debug: cfg.Debug, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logger.Close()

	gen := sequence.NewGenerator()
	gen.SkipTo(cfg.From)

	screen, err := display.New()
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.Start()

	r := &runner.Runner{
		Generator: gen,
		Display:   screen,
		Ticker:    clock.NewTicker(cfg.Interval),
		Logger:    logger.Logger,
		MaxSteps:  cfg.MaxSteps,
	}

	if cfg.Sound {
		chime := audio.NewChime(cfg.Volume)
		if err := chime.Init(); err != nil {
			// Non-fatal, the sequence runs silently
			logger.Warn("audio initialization failed", zap.Error(err))
		} else {
			defer chime.Close()
			r.Chime = chime
		}
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	width, height := screen.Size()
	logger.Info("display ready",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Duration("interval", cfg.Interval),
		zap.Uint64("from", cfg.From),
	)

	return r.Run(ctx)
}
