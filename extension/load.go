package extension

import (
	"strings"

	"github.com/socialpost/socialpost/configuration"
	"github.com/socialpost/socialpost/parameters"
)

// ParameterPrefix is the namespace every social_post parameter lives under.
const ParameterPrefix = "social_post.configuration"

// ParameterName joins parts under ParameterPrefix, e.g. ParameterName("facebook", "page_id").
func ParameterName(parts ...string) string {
	return strings.Join(append([]string{ParameterPrefix}, parts...), ".")
}

// Load materializes cfg into store:
//
//	social_post.configuration.publish_on          ordered provider names ([]string)
//	social_post.configuration.<provider>          full field map (map[string]any)
//	social_post.configuration.<provider>.<field>  individual values
func Load(store *parameters.Store, cfg *configuration.Normalized) {
	store.Set(ParameterName("publish_on"), cfg.PublishOn())

	for _, provider := range cfg.ProviderNames() {
		fields, _ := cfg.Provider(provider)

		store.Set(ParameterName(provider), map[string]any(fields))

		for field, value := range fields {
			store.Set(ParameterName(provider, field), value)
		}
	}
}
