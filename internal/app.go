// Package internal provides the App struct that wires the configuration
// store, the HTTP client and the terminal prompts into the CLI layer.
package internal

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/valter-silva-au/umsebenzi/internal/apiclient"
	"github.com/valter-silva-au/umsebenzi/internal/cli"
	"github.com/valter-silva-au/umsebenzi/internal/core"
	"github.com/valter-silva-au/umsebenzi/internal/observability"
	"github.com/valter-silva-au/umsebenzi/internal/prompt"
)

// App holds the service dependencies of one umsebenzi invocation.
type App struct {
	// Configuration
	ConfigMgr core.ConfigurationManager

	// Remote service
	Client *apiclient.Client

	// Terminal interaction
	Prompter core.Prompter
	Capturer core.TextCapturer

	Logger *log.Logger
}

// Options controls how NewApp wires the App. Zero values select the
// defaults: the standard streams and the user config path.
type Options struct {
	ConfigPath string
	Verbose    bool
	Version    string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewApp creates and wires all components. It does not read the
// configuration file: that happens lazily on the first request, so
// `config add` works before any file exists.
func NewApp(opts Options) *App {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	app := &App{}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(opts.ConfigPath)

	// --- Observability ---
	app.Logger = observability.NewLogger(opts.Stderr, opts.Verbose)

	// --- Remote service ---
	builder := apiclient.NewBuilder(app.ConfigMgr, nil)
	if opts.Version != "" {
		builder.UserAgent = "umsebenzi/" + opts.Version
	}
	app.Client = apiclient.New(builder, app.Logger)

	// --- Terminal ---
	app.Prompter = prompt.NewLine(opts.Stdin, opts.Stdout)
	editor := prompt.NewEditor()
	editor.Stdin, editor.Stdout, editor.Stderr = opts.Stdin, opts.Stdout, opts.Stderr
	app.Capturer = editor

	app.Logger.WithField("config", app.ConfigMgr.Path()).Debug("app initialized")
	return app
}

// Wire publishes the App's services to the CLI package.
func (a *App) Wire() {
	cli.ConfigMgr = a.ConfigMgr
	cli.API = a.Client
	cli.Prompter = a.Prompter
	cli.Capturer = a.Capturer
}

// Init installs the CLI bootstrap hook. The App is built once the persistent
// flags are parsed, so --config and --verbose take effect.
func Init(version string) {
	cli.Bootstrap = func(configPath string, verbose bool) error {
		NewApp(Options{
			ConfigPath: configPath,
			Verbose:    verbose,
			Version:    version,
		}).Wire()
		return nil
	}
}
