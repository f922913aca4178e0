package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath  string
	data      []byte
	expandEnv bool
	lookupEnv func(string) (string, bool)
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithEnvExpansion replaces $VAR and ${VAR} references with environment values before caching.
// Unset variables expand to an empty string.
func WithEnvExpansion() Option {
	return func(f *Fetcher) {
		f.expandEnv = true
	}
}

// WithEnvLookup sets the environment lookup used by WithEnvExpansion. Defaults to os.LookupEnv.
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(f *Fetcher) {
		f.lookupEnv = lookup
	}
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		fetcher := &Fetcher{
			filepath:  cleanPath,
			lookupEnv: os.LookupEnv,
		}

		for _, apply := range opts {
			apply(fetcher)
		}

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		if fetcher.expandEnv {
			data = []byte(os.Expand(string(data), func(name string) string {
				value, _ := fetcher.lookupEnv(name)

				return value
			}))
		}

		fetcher.data = data

		return fetcher, nil
	}
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
