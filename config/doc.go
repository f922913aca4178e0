// Package config provides configuration loading functionalities and interfaces.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a target, with path navigation support
//   - DataFetcher: retrieves raw config data (file, memory, etc.)
//   - Validator: validates typed config after parsing
//   - Defaulter: applies default values before validation
//
// Two entry points sit on top of them. Provider decodes into a typed struct, and
// DocumentProvider decodes into an untyped Document for schema-driven consumers
// such as the social_post extension.
//
// # Path Navigation
//
// Paths use colon (:) as the separator:
//
//	"social_post"                    -> config["social_post"]
//	"social_post:providers"          -> config["social_post"]["providers"]
//	""                               -> entire document
//
// # Example
//
//	load := config.DocumentProvider("social_post")
//	doc, err := load(yamlparser.NewParser(), static.New(data))
package config
