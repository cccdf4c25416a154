package app

import (
	"net/http"
	"os"

	"github.com/firefly-engineering/hydra-pin/internal/config"
	"github.com/firefly-engineering/hydra-pin/internal/hydra"
	"github.com/firefly-engineering/hydra-pin/internal/overlay"
	"github.com/firefly-engineering/hydra-pin/internal/prefetch"
	"github.com/firefly-engineering/hydra-pin/internal/resolver"
	"github.com/firefly-engineering/hydra-pin/internal/system"
)

// App holds the application dependencies
type App struct {
	// FS is the file system holding the overlay file
	FS system.FileSystem

	// Executor runs external tools
	Executor system.CommandExecutor

	// HTTPClient talks to the Hydra API
	HTTPClient *http.Client

	// Getenv reads environment variables
	Getenv func(string) string
}

// Option is a function that configures the App
type Option func(*App)

// WithFS sets a custom file system
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(a *App) {
		a.HTTPClient = c
	}
}

// WithGetenv sets a custom environment lookup
func WithGetenv(getenv func(string) string) Option {
	return func(a *App) {
		a.Getenv = getenv
	}
}

// New creates a new App with the given options.
// Unset dependencies use the real OS implementations.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Executor == nil {
		app.Executor = system.DefaultExecutor()
	}
	if app.HTTPClient == nil {
		app.HTTPClient = &http.Client{}
	}
	if app.Getenv == nil {
		app.Getenv = os.Getenv
	}

	return app
}

// Resolver builds a Resolver wired to the configured tools and Hydra instance
func (a *App) Resolver(cfg *config.Config) *resolver.Resolver {
	return resolver.New(
		hydra.NewChecker(cfg.HydraCheck, a.Executor),
		hydra.NewClient(cfg.HydraURL, a.HTTPClient),
		prefetch.New(cfg.Prefetch, a.Executor),
	)
}

// Store returns the overlay store for path
func (a *App) Store(path string) *overlay.Store {
	return overlay.NewStore(path, a.FS)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
