package extension

import (
	"github.com/socialpost/socialpost/configuration"
	"github.com/socialpost/socialpost/parameters"
)

// DefaultPath is the configuration section read by the module.
const DefaultPath = "social_post"

// Options holds the module settings.
type Options struct {
	Path    string
	Schemas []configuration.Schema
	Store   *parameters.Store
}

// Option defines a function type for configuring the module.
type Option func(*Options)

// WithPath sets the colon-separated section path, e.g. "app:social_post".
func WithPath(path string) Option {
	return func(opts *Options) {
		opts.Path = path
	}
}

// WithSchema registers an extra provider schema, or replaces a built-in one.
func WithSchema(schema configuration.Schema) Option {
	return func(opts *Options) {
		opts.Schemas = append(opts.Schemas, schema)
	}
}

// NewValidator returns the validator NewModule builds for opts: the built-in
// schemas plus every WithSchema. Its SecretFields covers custom schemas too.
func NewValidator(opts ...Option) *configuration.Validator {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return options.validator()
}

func (o Options) validator() *configuration.Validator {
	validatorOpts := make([]configuration.Option, 0, len(o.Schemas))
	for _, schema := range o.Schemas {
		validatorOpts = append(validatorOpts, configuration.WithSchema(schema))
	}

	return configuration.New(validatorOpts...)
}

// WithStore writes parameters into a caller-owned store instead of a new one.
func WithStore(store *parameters.Store) Option {
	return func(opts *Options) {
		opts.Store = store
	}
}
