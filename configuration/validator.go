package configuration

import (
	"sort"

	"github.com/socialpost/socialpost/config"

	"go.uber.org/multierr"
)

const (
	keyPublishOn = "publish_on"
	keyProviders = "providers"
)

// Validator checks a social_post document against a set of provider schemas.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	schemas map[string]Schema
}

// Option configures a Validator.
type Option func(*Validator)

// WithSchema registers a provider schema, replacing a built-in one with the same provider name.
func WithSchema(schema Schema) Option {
	return func(v *Validator) {
		v.schemas[schema.Provider] = schema
	}
}

// New creates a Validator with the built-in facebook and twitter schemas.
func New(opts ...Option) *Validator {
	validator := &Validator{schemas: make(map[string]Schema)}

	for _, schema := range DefaultSchemas() {
		validator.schemas[schema.Provider] = schema
	}

	for _, apply := range opts {
		apply(validator)
	}

	return validator
}

// Validate checks raw with the built-in schemas. See (*Validator).Validate.
func Validate(raw config.Document) (*Normalized, error) {
	return New().Validate(raw)
}

// Schema returns the schema registered for provider.
func (v *Validator) Schema(provider string) (Schema, bool) {
	schema, ok := v.schemas[provider]

	return schema, ok
}

// SecretFields lists the secret field names of every registered schema, sorted.
func (v *Validator) SecretFields() []string {
	return secretFields(v.schemas)
}

// Validate checks the social_post section raw and returns the normalized configuration.
// Every violation is collected; the returned error combines them and can be split with Violations.
// raw is never modified.
func (v *Validator) Validate(raw config.Document) (*Normalized, error) {
	var errs error

	publishOn, err := publishTargets(raw)
	errs = multierr.Append(errs, err)

	sections, err := providerSections(raw)
	errs = multierr.Append(errs, err)

	seen := make(map[string]struct{}, len(publishOn))

	for _, name := range publishOn {
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}

		if _, ok := sections[name]; !ok {
			errs = multierr.Append(errs, missingProvider(name))
		}
	}

	providers := make(map[string]Fields, len(sections))

	for _, name := range orderedNames(publishOn, sections) {
		section, ok := sections[name]
		if !ok {
			continue
		}

		fields, err := v.normalize(name, section)
		errs = multierr.Append(errs, err)
		providers[name] = fields
	}

	if errs != nil {
		return nil, errs
	}

	return &Normalized{publishOn: publishOn, providers: providers}, nil
}

func (v *Validator) normalize(provider string, section config.Document) (Fields, error) {
	fields := Fields(section.Clone())
	if fields == nil {
		fields = Fields{}
	}

	schema, ok := v.schemas[provider]
	if !ok {
		return fields, nil
	}

	var errs error

	for _, field := range schema.Fields {
		value, present := fields[field.Name]

		switch {
		case field.Required && (!present || value == nil):
			errs = multierr.Append(errs, missingField(provider, field.Name))
		case !present && field.HasDefault:
			fields[field.Name] = config.CloneValue(field.Default)
		}
	}

	return fields, errs
}

func publishTargets(raw config.Document) ([]string, error) {
	value, ok := raw[keyPublishOn]
	if !ok || value == nil {
		return nil, emptyPublishTargets()
	}

	var names []string

	switch list := value.(type) {
	case []string:
		names = append(names, list...)
	case []any:
		for _, item := range list {
			name, isString := item.(string)
			if !isString {
				return nil, invalidValue(keyPublishOn)
			}

			names = append(names, name)
		}
	default:
		return nil, invalidValue(keyPublishOn)
	}

	if len(names) == 0 {
		return nil, emptyPublishTargets()
	}

	return names, nil
}

// providerSections returns every entry under providers. A null entry counts as configured but empty.
func providerSections(raw config.Document) (map[string]config.Document, error) {
	value, ok := raw[keyProviders]
	if !ok || value == nil {
		return map[string]config.Document{}, nil
	}

	providers, ok := config.AsDocument(value)
	if !ok {
		return map[string]config.Document{}, invalidValue(keyProviders)
	}

	var errs error

	sections := make(map[string]config.Document, len(providers))

	for _, name := range providers.Keys() {
		entry := providers[name]
		if entry == nil {
			sections[name] = config.Document{}

			continue
		}

		section, isMapping := config.AsDocument(entry)
		if !isMapping {
			errs = multierr.Append(errs, invalidValue(keyProviders+"."+name))

			continue
		}

		sections[name] = section
	}

	return sections, errs
}

// orderedNames returns the publish_on providers first, then the remaining ones sorted.
func orderedNames[T any](publishOn []string, sections map[string]T) []string {
	names := make([]string, 0, len(sections))
	listed := make(map[string]struct{}, len(publishOn))

	for _, name := range publishOn {
		if _, dup := listed[name]; dup {
			continue
		}

		listed[name] = struct{}{}

		if _, ok := sections[name]; ok {
			names = append(names, name)
		}
	}

	rest := make([]string, 0, len(sections))

	for name := range sections {
		if _, ok := listed[name]; !ok {
			rest = append(rest, name)
		}
	}

	sort.Strings(rest)

	return append(names, rest...)
}
