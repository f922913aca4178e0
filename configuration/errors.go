package configuration

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	// ErrEmptyPublishTargets is returned when publish_on is absent or empty.
	ErrEmptyPublishTargets = errors.New("publish_on must list at least one provider")
	// ErrMissingProviderConfiguration is returned when a provider listed in publish_on has no entry.
	ErrMissingProviderConfiguration = errors.New("missing provider configuration")
	// ErrMissingRequiredField is returned when a provider entry omits a required field.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidValue is returned when a value has the wrong shape, e.g. a scalar where a mapping is expected.
	ErrInvalidValue = errors.New("invalid value")
)

// Kind enumerates the violation types.
type Kind int

// Violation kinds.
const (
	KindEmptyPublishTargets Kind = iota + 1
	KindMissingProviderConfiguration
	KindMissingRequiredField
	KindInvalidValue
)

func (k Kind) String() string {
	switch k {
	case KindEmptyPublishTargets:
		return "EmptyPublishTargets"
	case KindMissingProviderConfiguration:
		return "MissingProviderConfiguration"
	case KindMissingRequiredField:
		return "MissingRequiredField"
	case KindInvalidValue:
		return "InvalidValue"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindEmptyPublishTargets:
		return ErrEmptyPublishTargets
	case KindMissingProviderConfiguration:
		return ErrMissingProviderConfiguration
	case KindMissingRequiredField:
		return ErrMissingRequiredField
	default:
		return ErrInvalidValue
	}
}

// ValidationError is a single configuration violation.
// Provider, Field and Path are filled depending on Kind.
type ValidationError struct {
	Kind     Kind
	Provider string
	Field    string
	Path     string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindEmptyPublishTargets:
		return e.Kind.sentinel().Error()
	case KindMissingProviderConfiguration:
		return fmt.Sprintf("%s: provider %q is listed in publish_on but not configured under providers",
			e.Kind.sentinel(), e.Provider)
	case KindMissingRequiredField:
		return fmt.Sprintf("%s: provider %q requires %q", e.Kind.sentinel(), e.Provider, e.Field)
	default:
		return fmt.Sprintf("%s at %q", e.Kind.sentinel(), e.Path)
	}
}

// Unwrap exposes the sentinel of the violation kind to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// Violations flattens an error returned by Validate into its violations, in report order.
// Errors that are not violations are skipped.
func Violations(err error) []*ValidationError {
	var violations []*ValidationError

	for _, item := range multierr.Errors(err) {
		var violation *ValidationError
		if errors.As(item, &violation) {
			violations = append(violations, violation)
		}
	}

	return violations
}

func emptyPublishTargets() error {
	return &ValidationError{Kind: KindEmptyPublishTargets, Path: keyPublishOn}
}

func missingProvider(provider string) error {
	return &ValidationError{
		Kind:     KindMissingProviderConfiguration,
		Provider: provider,
		Path:     keyProviders + "." + provider,
	}
}

func missingField(provider, field string) error {
	return &ValidationError{
		Kind:     KindMissingRequiredField,
		Provider: provider,
		Field:    field,
		Path:     keyProviders + "." + provider + "." + field,
	}
}

func invalidValue(path string) error {
	return &ValidationError{Kind: KindInvalidValue, Path: path}
}
