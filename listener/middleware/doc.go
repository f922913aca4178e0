// Package middleware provides HTTP middleware for listener handlers.
//
// Request IDs come from chi's middleware.RequestID; Logging and Recovery pick them up
// from the request context when present. Timeout bounds request processing, Compress
// gzips large responses and RateLimit caps requests per client IP.
package middleware
