package socialpost

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/socialpost/socialpost/config"
	filefetcher "github.com/socialpost/socialpost/config/fetcher/file"
	yamlparser "github.com/socialpost/socialpost/config/parser/yaml"
	"github.com/socialpost/socialpost/configuration"
	"github.com/socialpost/socialpost/extension"
	"github.com/socialpost/socialpost/listener"
	"github.com/socialpost/socialpost/parameters"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules          []fx.Option
	LogLevel         string
	LogOutput        io.Writer
	ConfigFile       string
	FileOptions      []filefetcher.Option
	ExtensionOptions []extension.Option
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile loads social_post configuration from a YAML file.
// It provides the YAML config.Parser, a file config.DataFetcher and the social_post extension module.
func WithConfigFile(path string, fileOpts ...filefetcher.Option) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
		opts.FileOptions = append(opts.FileOptions, fileOpts...)
	}
}

// WithExtensionOptions configures the social_post extension module, e.g. extension.WithSchema.
// Without WithConfigFile the caller supplies config.Parser and config.DataFetcher and
// these options still apply.
func WithExtensionOptions(extOpts ...extension.Option) Option {
	return func(opts *Options) {
		opts.ExtensionOptions = append(opts.ExtensionOptions, extOpts...)
	}
}

// WithInspectListener serves the read-only parameters handler on a named HTTP listener.
// Secret fields of every registered schema, custom ones included, are redacted.
func WithInspectListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules,
			fx.Provide(
				fx.Annotate(
					func(
						store *parameters.Store,
						validator *configuration.Validator,
						logger *slog.Logger,
					) (http.Handler, error) {
						redact := parameters.SecretRedactor(validator.SecretFields())

						return parameters.NewHandler(store, logger, parameters.WithRedaction(redact))
					},
					fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
				),
			),
			listener.NewModule(name, opts...),
		)
	}
}

// WithHTTPListener adds a named HTTP listener module to the application.
// The name is used as both the Fx module name and the DI named tag for http.Handler and Config.
// When options are provided (e.g., WithAddress), Config is supplied to DI automatically.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogOutput sets where JSON logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

func (o *Options) modules() []fx.Option {
	modules := slices.Clone(o.Modules)

	if o.ConfigFile != "" {
		modules = append(modules,
			fx.Provide(
				fx.Annotate(
					func() *yamlparser.Parser { return yamlparser.NewParser() },
					fx.As(new(config.Parser)),
				),
				fx.Annotate(
					filefetcher.NewFetcher(o.ConfigFile, o.FileOptions...),
					fx.As(new(config.DataFetcher)),
				),
			),
		)
	}

	if o.ConfigFile != "" || len(o.ExtensionOptions) > 0 {
		modules = append(modules, extension.NewModule(o.ExtensionOptions...))
	}

	return modules
}
