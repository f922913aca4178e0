package config

import (
	"fmt"
	"sort"
	"strings"
)

// Document is an untyped configuration tree as handed over by a Parser.
// Values are scalars, []any lists or nested Document / map[string]any mappings.
type Document map[string]any

// Section returns the nested mapping stored under key.
// The second result is false when the key is absent or does not hold a mapping.
func (d Document) Section(key string) (Document, bool) {
	value, ok := d[key]
	if !ok {
		return nil, false
	}

	return AsDocument(value)
}

// Lookup resolves a colon-separated path, e.g. "providers:facebook:app_id".
func (d Document) Lookup(path string) (any, bool) {
	if path == "" {
		return d, true
	}

	var current any = d

	for _, part := range strings.Split(path, ":") {
		section, ok := AsDocument(current)
		if !ok {
			return nil, false
		}

		current, ok = section[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Keys returns the document keys in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Clone returns a deep copy with every nested mapping converted to Document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}

	cloned, _ := CloneValue(d).(Document)

	return cloned
}

// AsDocument converts a mapping value produced by a parser into a Document.
// Non-string keys are stringified with fmt.Sprint. A mapping where two keys
// stringify to the same name (e.g. 1 and "1") is not a Document.
func AsDocument(value any) (Document, bool) {
	switch typed := value.(type) {
	case Document:
		return typed, true
	case map[string]any:
		return Document(typed), true
	case map[any]any:
		doc := make(Document, len(typed))

		for key, v := range typed {
			name, ok := key.(string)
			if !ok {
				name = fmt.Sprint(key)
			}

			if _, dup := doc[name]; dup {
				return nil, false
			}

			doc[name] = v
		}

		return doc, true
	default:
		return nil, false
	}
}

// CloneValue deep-copies lists and mappings. Scalars are returned as is.
func CloneValue(value any) any {
	switch typed := value.(type) {
	case []any:
		list := make([]any, len(typed))
		for i, item := range typed {
			list[i] = CloneValue(item)
		}

		return list
	case []string:
		list := make([]string, len(typed))
		copy(list, typed)

		return list
	default:
		doc, ok := AsDocument(value)
		if !ok {
			return value
		}

		cloned := make(Document, len(doc))
		for key, item := range doc {
			cloned[key] = CloneValue(item)
		}

		return cloned
	}
}
