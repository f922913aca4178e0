// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Colon-separated paths
// (e.g., "social_post:providers") are converted to YAML path format
// (e.g., "$.social_post.providers") and the selected node is decoded with
// the parser's decode options.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var doc config.Document
//	err := parser.Parse(data, &doc, "social_post")
package yaml
