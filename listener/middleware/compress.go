package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// minCompressSize is the minimum response size in bytes before compression is applied.
const minCompressSize = 256

// Compress returns a middleware that gzips responses for clients sending
// Accept-Encoding: gzip. Responses under 256 bytes are sent as is.
func Compress() (func(http.Handler) http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(minCompressSize))
	if err != nil {
		return nil, fmt.Errorf("middleware: building gzip wrapper: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
