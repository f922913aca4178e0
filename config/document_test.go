package config_test

import (
	"testing"

	"github.com/socialpost/socialpost/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() config.Document {
	return config.Document{
		"publish_on": []any{"facebook", "twitter"},
		"providers": map[string]any{
			"facebook": map[string]any{
				"app_id":           "2017",
				"enable_beta_mode": true,
			},
			"legacy": map[any]any{
				"token": "abc",
				42:      "answer",
			},
		},
	}
}

func TestDocument_Lookup(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()

	testCases := []struct {
		name     string
		path     string
		expected any
		found    bool
	}{
		{name: "top level list", path: "publish_on", expected: []any{"facebook", "twitter"}, found: true},
		{name: "nested scalar", path: "providers:facebook:app_id", expected: "2017", found: true},
		{name: "nested bool", path: "providers:facebook:enable_beta_mode", expected: true, found: true},
		{name: "any keyed map", path: "providers:legacy:token", expected: "abc", found: true},
		{name: "stringified key", path: "providers:legacy:42", expected: "answer", found: true},
		{name: "missing key", path: "providers:twitter", found: false},
		{name: "through scalar", path: "publish_on:0", found: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, found := doc.Lookup(testCase.path)

			require.Equal(t, testCase.found, found)

			if testCase.found {
				assert.Equal(t, testCase.expected, value)
			}
		})
	}
}

func TestDocument_LookupEmptyPath(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()

	value, found := doc.Lookup("")

	require.True(t, found)
	assert.Equal(t, doc, value)
}

func TestDocument_Section(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()

	providers, ok := doc.Section("providers")
	require.True(t, ok)
	assert.Equal(t, []string{"facebook", "legacy"}, providers.Keys())

	_, ok = doc.Section("publish_on")
	assert.False(t, ok, "a list is not a section")

	_, ok = doc.Section("missing")
	assert.False(t, ok)
}

func TestDocument_CloneIsDeep(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()
	cloned := doc.Clone()

	list, ok := cloned["publish_on"].([]any)
	require.True(t, ok)

	list[0] = "mastodon"

	facebook, ok := cloned.Lookup("providers:facebook")
	require.True(t, ok)

	section, ok := facebook.(config.Document)
	require.True(t, ok, "nested mappings are converted to Document")

	section["app_id"] = "changed"

	original, _ := doc.Lookup("providers:facebook:app_id")
	assert.Equal(t, "2017", original)
	assert.Equal(t, []any{"facebook", "twitter"}, doc["publish_on"])
}

func TestAsDocument_CollidingKeys(t *testing.T) {
	t.Parallel()

	doc, ok := config.AsDocument(map[any]any{1: "int key", "1": "string key"})

	assert.False(t, ok)
	assert.Nil(t, doc)

	doc, ok = config.AsDocument(map[any]any{1: "int key", "2": "string key"})

	require.True(t, ok)
	assert.Equal(t, config.Document{"1": "int key", "2": "string key"}, doc)
}

func TestDocument_CloneNil(t *testing.T) {
	t.Parallel()

	var doc config.Document

	assert.Nil(t, doc.Clone())
}

func TestCloneValue_Scalars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", config.CloneValue("x"))
	assert.Equal(t, true, config.CloneValue(true))
	assert.Nil(t, config.CloneValue(nil))

	strs := []string{"a", "b"}
	cloned, ok := config.CloneValue(strs).([]string)
	require.True(t, ok)

	cloned[0] = "z"
	assert.Equal(t, "a", strs[0])
}
