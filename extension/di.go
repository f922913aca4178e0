package extension

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/socialpost/socialpost/config"
	"github.com/socialpost/socialpost/configuration"
	"github.com/socialpost/socialpost/parameters"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name.
const ModuleName = "social_post"

// NewModule creates the social_post Fx module.
// It consumes config.Parser and config.DataFetcher, validates the configured section and provides
// *configuration.Normalized, the *parameters.Store holding the materialized parameters and the
// *configuration.Validator in use.
// A validation failure aborts application start; every violation is logged.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	options := Options{Path: DefaultPath}

	for _, apply := range opts {
		apply(&options)
	}

	validator := options.validator()

	return fx.Module(ModuleName,
		fx.Supply(validator),
		fx.Provide(
			func(parser config.Parser, fetcher config.DataFetcher, logger *slog.Logger) (*configuration.Normalized, error) {
				return load(validator, options.Path, parser, fetcher, logger)
			},
			func(cfg *configuration.Normalized, logger *slog.Logger) *parameters.Store {
				store := options.Store
				if store == nil {
					store = parameters.NewStore()
				}

				Load(store, cfg)

				logger.Debug("social_post parameters registered", slog.Int("count", store.Len()))

				return store
			},
		),
	)
}

func load(
	validator *configuration.Validator,
	path string,
	parser config.Parser,
	fetcher config.DataFetcher,
	logger *slog.Logger,
) (*configuration.Normalized, error) {
	doc, err := config.LoadSection(parser, fetcher, path)
	if err != nil {
		return nil, fmt.Errorf("loading %s configuration: %w", ModuleName, err)
	}

	normalized, err := validator.Validate(doc)
	if err != nil {
		for _, violation := range configuration.Violations(err) {
			logger.Error("invalid social_post configuration",
				slog.String("kind", violation.Kind.String()),
				slog.String("path", violation.Path),
				slog.String("provider", violation.Provider),
				slog.String("field", violation.Field),
			)
		}

		return nil, fmt.Errorf("validating %s configuration: %w", ModuleName, err)
	}

	redact := parameters.SecretRedactor(validator.SecretFields())
	attrs := []any{slog.Any("publish_on", normalized.PublishOn())}

	for _, provider := range normalized.ProviderNames() {
		fields, _ := normalized.Provider(provider)
		attrs = append(attrs, slog.Group(provider, fieldAttrs(fields, redact)...))
	}

	logger.Info("social_post configuration loaded", attrs...)

	return normalized, nil
}

func fieldAttrs(fields configuration.Fields, redact func(string) bool) []any {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, slog.Any(name, parameters.Mask(name, fields[name], redact)))
	}

	return attrs
}
