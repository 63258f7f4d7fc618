// Package cli implements the headtags command: render and lint named head
// files, list them, and build a head interactively.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-headtags/internal/config"
	"github.com/goliatone/go-headtags/internal/logging"
	"github.com/goliatone/go-headtags/pkg/headfile"
)

// Option customises the root command.
type Option func(*App)

// WithOutput redirects command output and logs.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// WithViper supplies the viper instance used for configuration.
func WithViper(v *viper.Viper) Option {
	return func(a *App) {
		if v != nil {
			a.viper = v
		}
	}
}

// WithPromptDriver replaces the survey-backed prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(a *App) {
		a.driver = driver
	}
}

// App carries state shared by every subcommand.
type App struct {
	viper   *viper.Viper
	stdout  io.Writer
	stderr  io.Writer
	driver  PromptDriver
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

// flag name -> config key
var boundFlags = map[string]string{
	"dir":        config.KeyDir,
	"pattern":    config.KeyPattern,
	"renderer":   config.KeyRenderer,
	"base-url":   config.KeyBaseURL,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
}

// NewRootCommand assembles the headtags command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	app := &App{
		viper:  config.NewViper(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logging.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(app)
	}
	if app.driver == nil {
		app.driver = newSurveyDriver(app.stdout)
	}

	root := &cobra.Command{
		Use:           "headtags",
		Short:         "Render document head metadata from declarative head files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&app.cfgFile, "config", "", "config file (default is ./.headtags.yaml)")
	flags.String("dir", ".", "directory holding head files")
	flags.String("pattern", "", "doublestar glob selecting head files, e.g. heads/**/*.yaml")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	root.AddCommand(
		newRenderCommand(app),
		newListCommand(app),
		newRenderersCommand(app),
		newPromptCommand(app),
		newLintCommand(app),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context, options ...Option) error {
	return NewRootCommand(options...).ExecuteContext(ctx)
}

// setup binds the flags visible to cmd, loads configuration and builds the
// logger. Flags are bound per invocation so subcommands sharing a key do not
// steal each other's binding.
func (a *App) setup(cmd *cobra.Command) error {
	for name, key := range boundFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := a.viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.viper, a.cfgFile, ".")
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, a.stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("config.loaded", "dir", cfg.Dir, "pattern", cfg.Pattern, "renderer", cfg.Renderer)
	return nil
}

func (a *App) loadStore() (*headfile.Store, error) {
	return headfile.LoadFS(
		os.DirFS(a.cfg.Dir),
		headfile.WithPattern(a.cfg.Pattern),
		headfile.WithLogger(a.logger),
	)
}
