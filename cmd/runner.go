package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/player"
	"github.com/desertthunder/scplay/internal/services"
	"github.com/desertthunder/scplay/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	configured bool
	service    services.Service
	built      bool // service was built by soundCloud
	player     page.Player
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// A nil Service or Player is built from the config on first use.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Service    services.Service
	Player     page.Player
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	configured := opts.Config != nil
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		configured: configured,
		service:    opts.Service,
		player:     opts.Player,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		searchCommand, tracksCommand, streamURLCommand, playCommand, exportCommand, tuiCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before loads the config file named by --config (or the XDG fallback) and applies the log level.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if !r.configured {
		path, err := shared.ResolveConfigPath(cmd.String("config"))
		switch {
		case err != nil:
			r.logger.Debug("no config file found, using defaults", "path", cmd.String("config"))
		default:
			config, err := shared.LoadConfig(path)
			if err != nil {
				return ctx, err
			}
			r.config = config
			r.configPath = path
			r.logger.Debug("loaded config", "path", path)
		}
		r.configured = true
	}

	level := r.config.Log.Level
	if override := cmd.String("log-level"); override != "" {
		level = override
	}
	shared.SetLogLevel(r.logger, shared.ParseLogLevel(level))
	return ctx, nil
}

// After releases the audio device.
func (r *Runner) After(ctx context.Context, cmd *cli.Command) error {
	if c, ok := r.player.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SetLogger replaces the logger, e.g. with a file logger while the TUI owns the terminal.
//
// A service built from the config is dropped so the next use rebuilds it with l.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
	if r.built {
		r.service = nil
		r.built = false
	}
}

// soundCloud returns the injected service or builds one from the config.
func (r *Runner) soundCloud() (services.Service, error) {
	if r.service != nil {
		return r.service, nil
	}

	if err := r.config.Validate(); err != nil {
		return nil, fmt.Errorf("%w (run 'scplay setup curl' to store a client_id)", err)
	}

	fetcher := services.NewFetcher(services.FetcherOpts{
		HTTPClient:        r.httpClient,
		Logger:            r.logger,
		RequestsPerSecond: r.config.SoundCloud.RequestsPerSecond,
	})
	urls := services.NewURLBuilder(r.config.SoundCloud.APIURL, r.config.SoundCloud.ClientID)
	r.service = services.NewSoundCloudService(urls, fetcher, r.logger)
	r.built = true
	return r.service, nil
}

// audioPlayer returns the injected player, a new speaker-backed player, or nil when audio is disabled.
func (r *Runner) audioPlayer() page.Player {
	if r.player != nil {
		return r.player
	}
	if !r.config.Player.Enabled {
		return nil
	}
	r.player = player.New(r.httpClient, r.logger)
	return r.player
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeBytes(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
