package configuration

import (
	"github.com/socialpost/socialpost/config"
)

// Fields is the resolved field map of one provider: explicit values plus schema defaults.
type Fields map[string]any

// Clone returns a deep copy of the field map.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}

	return Fields(config.Document(f).Clone())
}

// Normalized is a validated social_post configuration. It is immutable; accessors return copies.
type Normalized struct {
	publishOn []string
	providers map[string]Fields
}

// PublishOn returns the providers to publish on, in configured order. Duplicates are kept.
func (n *Normalized) PublishOn() []string {
	list := make([]string, len(n.publishOn))
	copy(list, n.publishOn)

	return list
}

// Provider returns the resolved fields of a configured provider.
func (n *Normalized) Provider(name string) (Fields, bool) {
	fields, ok := n.providers[name]
	if !ok {
		return nil, false
	}

	return fields.Clone(), true
}

// ProviderNames returns every configured provider: publish_on order first, then the rest sorted.
func (n *Normalized) ProviderNames() []string {
	return orderedNames(n.publishOn, n.providers)
}

// Document renders the configuration back into a social_post document.
// Validating the result yields an identical configuration.
func (n *Normalized) Document() config.Document {
	publishOn := make([]any, len(n.publishOn))
	for i, name := range n.publishOn {
		publishOn[i] = name
	}

	providers := make(config.Document, len(n.providers))
	for name, fields := range n.providers {
		providers[name] = config.Document(fields.Clone())
	}

	return config.Document{
		keyPublishOn: publishOn,
		keyProviders: providers,
	}
}
