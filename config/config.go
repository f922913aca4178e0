package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrEmptySection is returned when the configuration section resolves to nothing.
var ErrEmptySection = errors.New("configuration section is empty")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "social_post" navigates to config["social_post"]
//   - "social_post:providers:facebook" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an example using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data
// into a typed target.
func Provider[T any](target *T, path string) func(Parser, DataFetcher, *slog.Logger) (*T, error) {
	return func(parser Parser, fetcher DataFetcher, logger *slog.Logger) (*T, error) {
		err := decode(parser, fetcher, target, path)
		if err != nil {
			return nil, err
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter && targetDefaulter.SetDefaults() {
			logger.Info("defaults applied", slog.String("path", path))
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// DocumentProvider returns a function that reads and parses the section at path
// into an untyped Document. Schema checks are left to the consumer.
func DocumentProvider(path string) func(Parser, DataFetcher) (Document, error) {
	return func(parser Parser, fetcher DataFetcher) (Document, error) {
		return LoadDocument(parser, fetcher, path)
	}
}

// LoadDocument fetches data and parses the section at path into a Document.
// An empty or null section is reported as ErrEmptySection.
func LoadDocument(parser Parser, fetcher DataFetcher, path string) (Document, error) {
	doc, err := LoadSection(parser, fetcher, path)
	if err != nil {
		return nil, err
	}

	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySection, path)
	}

	return doc, nil
}

// LoadSection is like LoadDocument but returns an empty, non-nil Document for an
// empty or null section, leaving its contents to a schema check.
func LoadSection(parser Parser, fetcher DataFetcher, path string) (Document, error) {
	var doc Document

	err := decode(parser, fetcher, &doc, path)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		return Document{}, nil
	}

	return doc.Clone(), nil
}

func decode(parser Parser, fetcher DataFetcher, target any, path string) error {
	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		return fmt.Errorf("parsing error: %w", err)
	}

	return nil
}
