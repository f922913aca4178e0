package parameters_test

import (
	"testing"

	"github.com/socialpost/socialpost/config"
	"github.com/socialpost/socialpost/parameters"

	"github.com/stretchr/testify/assert"
)

func TestSecretRedactor(t *testing.T) {
	t.Parallel()

	redact := parameters.SecretRedactor([]string{"consumer_secret", "api_key"})

	testCases := []struct {
		name     string
		expected bool
	}{
		{name: "social_post.configuration.twitter.consumer_secret", expected: true},
		{name: "social_post.configuration.mastodon.api_key", expected: true},
		{name: "api_key", expected: true},
		{name: "social_post.configuration.twitter.consumer_key", expected: false},
		{name: "social_post.configuration.twitter", expected: false},
		{name: "social_post.configuration.api_key_hint", expected: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, redact(testCase.name))
		})
	}
}

func TestMask(t *testing.T) {
	t.Parallel()

	redact := parameters.SecretRedactor([]string{"api_key"})

	original := config.Document{
		"api_key":    "TOPSECRET",
		"visibility": "public",
		"nested":     map[string]any{"api_key": "NESTED"},
	}

	masked := parameters.Mask("social_post.configuration.mastodon", original, redact)

	assert.Equal(t, map[string]any{
		"api_key":    parameters.Redacted,
		"visibility": "public",
		"nested":     map[string]any{"api_key": parameters.Redacted},
	}, masked)
	assert.Equal(t, "TOPSECRET", original["api_key"], "input is left untouched")

	assert.Equal(t, parameters.Redacted, parameters.Mask("social_post.configuration.mastodon.api_key", "x", redact))
	assert.Equal(t, []string{"a"}, parameters.Mask("social_post.configuration.publish_on", []string{"a"}, redact))
}
