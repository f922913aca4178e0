package parameters

import (
	"strings"

	"github.com/socialpost/socialpost/config"
)

// SecretRedactor reports whether the last dotted segment of a parameter name is one of secrets,
// e.g. "social_post.configuration.twitter.consumer_secret" for "consumer_secret".
func SecretRedactor(secrets []string) func(name string) bool {
	set := make(map[string]struct{}, len(secrets))
	for _, secret := range secrets {
		set[secret] = struct{}{}
	}

	return func(name string) bool {
		_, ok := set[name[strings.LastIndex(name, ".")+1:]]

		return ok
	}
}

// Mask returns value with every entry whose dotted name satisfies redact replaced by Redacted.
// Nested mapping keys are checked as "<name>.<key>". value is not modified.
func Mask(name string, value any, redact func(name string) bool) any {
	if redact(name) {
		return Redacted
	}

	mapping, ok := config.AsDocument(value)
	if !ok {
		return value
	}

	masked := make(map[string]any, len(mapping))
	for key, item := range mapping {
		masked[key] = Mask(name+"."+key, item, redact)
	}

	return masked
}
