// Package configuration validates and normalizes the social_post configuration section.
//
// The input is an untyped config.Document, usually the "social_post" section of a
// YAML file:
//
//	publish_on: [facebook, twitter]
//	providers:
//	    facebook:
//	        app_id: "2017"
//	        ...
//
// Each provider is described by a Schema, a declarative table of fields with their
// required flag and default. Facebook and Twitter are built in; WithSchema adds more.
//
// Validation collects every violation instead of stopping at the first one. The
// returned error combines *ValidationError values, which match the package sentinels
// with errors.Is and can be listed with Violations.
package configuration
