package configuration

import "sort"

// Provider names with a built-in schema.
const (
	Facebook = "facebook"
	Twitter  = "twitter"
)

// Field describes a single provider setting.
type Field struct {
	Name     string
	Required bool
	// Default is used when the field is absent. Only meaningful when HasDefault is set,
	// which allows a nil default that still materializes the key.
	Default    any
	HasDefault bool
	// Secret marks credentials that must not show up in logs or inspection output.
	Secret bool
}

// Schema is the declarative field table of one provider.
type Schema struct {
	Provider string
	Fields   []Field
}

// Field returns the descriptor for name.
func (s Schema) Field(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return Field{}, false
}

func required(name string, secret bool) Field {
	return Field{Name: name, Required: true, Secret: secret}
}

func optional(name string, value any) Field {
	return Field{Name: name, Default: value, HasDefault: true}
}

// FacebookSchema returns the field table of the facebook provider.
func FacebookSchema() Schema {
	return Schema{
		Provider: Facebook,
		Fields: []Field{
			required("app_id", false),
			required("app_secret", true),
			required("default_access_token", true),
			required("page_id", false),
			optional("enable_beta_mode", false),
			optional("default_graph_version", nil),
			optional("persistent_data_handler", "memory"),
			optional("pseudo_random_string_generator", "openssl"),
			optional("http_client_handler", "curl"),
		},
	}
}

// TwitterSchema returns the field table of the twitter provider.
func TwitterSchema() Schema {
	return Schema{
		Provider: Twitter,
		Fields: []Field{
			required("consumer_key", false),
			required("consumer_secret", true),
			required("access_token", true),
			required("access_token_secret", true),
		},
	}
}

// DefaultSchemas returns the built-in provider schemas.
func DefaultSchemas() []Schema {
	return []Schema{FacebookSchema(), TwitterSchema()}
}

// SecretFields lists the secret field names of the built-in schemas.
func SecretFields() []string {
	return New().SecretFields()
}

func secretFields(schemas map[string]Schema) []string {
	seen := make(map[string]struct{})

	for _, schema := range schemas {
		for _, field := range schema.Fields {
			if field.Secret {
				seen[field.Name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
