// Package listener provides an HTTP listener module for the Fx DI container.
package listener

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultAddress is the default address for the HTTP listener.
const DefaultAddress = ":8080"

// DefaultReadHeaderTimeout is the default timeout for reading request headers.
const DefaultReadHeaderTimeout = 10 * time.Second

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrInvalidConfig is returned when the listener Config fails validation.
var ErrInvalidConfig = errors.New("invalid listener config")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the listener name is empty.
var ErrEmptyName = errors.New("listener name must not be empty")

// ErrNilHandler is returned when a nil http.Handler is provided.
var ErrNilHandler = errors.New("handler must not be nil")

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the configuration for an HTTP listener.
type Config struct {
	Address           string        `validate:"required,hostname_port" yaml:"address"`
	ReadHeaderTimeout time.Duration `validate:"gte=0"                  yaml:"read_header_timeout"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = DefaultReadHeaderTimeout
		changed = true
	}

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	messages := make([]string, 0, len(validationErrors))

	for _, fieldError := range validationErrors {
		if fieldError.Field() == "Address" && fieldError.Tag() == "required" {
			return ErrEmptyAddress
		}

		messages = append(messages, formatFieldError(fieldError))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
}

func formatFieldError(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "hostname_port":
		return fmt.Sprintf("'%s' must be a host:port pair, got '%v'", fieldError.Field(), fieldError.Value())
	case "gte":
		return fmt.Sprintf("'%s' must be at least %s, got '%v'", fieldError.Field(), fieldError.Param(), fieldError.Value())
	default:
		return fmt.Sprintf("'%s' failed '%s' validation", fieldError.Field(), fieldError.Tag())
	}
}
