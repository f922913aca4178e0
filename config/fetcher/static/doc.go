// Package static provides an in-memory DataFetcher for the config package.
//
// It serves configuration that is already in memory: embedded files, data piped
// through stdin, or fixtures in tests.
//
//	fetcher := static.New([]byte("social_post:\n    publish_on: [twitter]\n"))
package static
