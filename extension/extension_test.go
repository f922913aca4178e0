package extension_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/socialpost/socialpost/config"
	"github.com/socialpost/socialpost/config/fetcher/static"
	yamlparser "github.com/socialpost/socialpost/config/parser/yaml"
	"github.com/socialpost/socialpost/configuration"
	"github.com/socialpost/socialpost/extension"
	"github.com/socialpost/socialpost/logging"
	"github.com/socialpost/socialpost/parameters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const minimalYAML = `
social_post:
    publish_on: [facebook, twitter]
    providers:
        facebook:
            app_id: "2017"
            app_secret: "some-secret"
            default_access_token: "some-access-token"
            page_id: "681"
        twitter:
            consumer_key: "some-consumer-key"
            consumer_secret: "some-consumer-secret"
            access_token: "some-access-token"
            access_token_secret: "some-access-token-secret"
`

const completeYAML = `
social_post:
    publish_on: [facebook, twitter]
    providers:
        facebook:
            app_id: "2017"
            app_secret: "some-secret"
            default_access_token: "some-access-token"
            page_id: "681"
            enable_beta_mode: true
            default_graph_version: "v2.8"
            persistent_data_handler: "session"
            pseudo_random_string_generator: "mcrypt"
            http_client_handler: "guzzle"
        twitter:
            consumer_key: "some-consumer-key"
            consumer_secret: "some-consumer-secret"
            access_token: "some-access-token"
            access_token_secret: "some-access-token-secret"
`

func configModule(data string, logger *slog.Logger) fx.Option {
	return fx.Options(
		fx.Supply(logger),
		fx.Provide(
			fx.Annotate(
				func() *yamlparser.Parser { return yamlparser.NewParser() },
				fx.As(new(config.Parser)),
			),
			fx.Annotate(
				func() *static.Fetcher { return static.New([]byte(data)) },
				fx.As(new(config.DataFetcher)),
			),
		),
	)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewModule_MinimalConfiguration(t *testing.T) {
	t.Parallel()

	var store *parameters.Store

	app := fxtest.New(t,
		configModule(minimalYAML, discardLogger()),
		extension.NewModule(),
		fx.Populate(&store),
	)

	app.RequireStart()
	defer app.RequireStop()

	facebook, err := parameters.Lookup[map[string]any](store, "social_post.configuration.facebook")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"app_id":                         "2017",
		"app_secret":                     "some-secret",
		"default_access_token":           "some-access-token",
		"page_id":                        "681",
		"enable_beta_mode":               false,
		"default_graph_version":          nil,
		"persistent_data_handler":        "memory",
		"pseudo_random_string_generator": "openssl",
		"http_client_handler":            "curl",
	}, facebook)

	publishOn, err := parameters.Lookup[[]string](store, "social_post.configuration.publish_on")
	require.NoError(t, err)
	assert.Equal(t, []string{"facebook", "twitter"}, publishOn)

	beta, err := parameters.Lookup[bool](store, "social_post.configuration.facebook.enable_beta_mode")
	require.NoError(t, err)
	assert.False(t, beta)
}

func TestNewModule_CompleteConfiguration(t *testing.T) {
	t.Parallel()

	var (
		store      *parameters.Store
		normalized *configuration.Normalized
	)

	app := fxtest.New(t,
		configModule(completeYAML, discardLogger()),
		extension.NewModule(),
		fx.Populate(&store, &normalized),
	)

	app.RequireStart()
	defer app.RequireStop()

	expected := map[string]any{
		"social_post.configuration.facebook.page_id":                 "681",
		"social_post.configuration.facebook.enable_beta_mode":        true,
		"social_post.configuration.facebook.default_graph_version":   "v2.8",
		"social_post.configuration.facebook.persistent_data_handler": "session",
		"social_post.configuration.facebook.http_client_handler":     "guzzle",
		"social_post.configuration.twitter.consumer_key":             "some-consumer-key",
		"social_post.configuration.twitter.consumer_secret":          "some-consumer-secret",
		"social_post.configuration.twitter.access_token":             "some-access-token",
		"social_post.configuration.twitter.access_token_secret":      "some-access-token-secret",
	}

	for name, value := range expected {
		got, err := store.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, value, got, name)
	}

	// 1 publish_on + 2 provider maps + 9 facebook fields + 4 twitter fields
	assert.Equal(t, 16, store.Len())
	assert.Equal(t, []string{"facebook", "twitter"}, normalized.PublishOn())
}

func TestNewModule_WithStore(t *testing.T) {
	t.Parallel()

	store := parameters.NewStore()
	store.Set("app.name", "socialpost")

	app := fxtest.New(t,
		configModule(minimalYAML, discardLogger()),
		extension.NewModule(extension.WithStore(store)),
		fx.Invoke(func(*parameters.Store) {}),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.True(t, store.Has("app.name"))
	assert.True(t, store.Has("social_post.configuration.twitter.consumer_key"))
}

func TestNewModule_WithPathAndSchema(t *testing.T) {
	t.Parallel()

	data := `
app:
    social_post:
        publish_on: [mastodon]
        providers:
            mastodon:
                access_token: "abc"
`

	mastodon := configuration.Schema{
		Provider: "mastodon",
		Fields: []configuration.Field{
			{Name: "access_token", Required: true, Secret: true},
			{Name: "visibility", Default: "public", HasDefault: true},
		},
	}

	var store *parameters.Store

	app := fxtest.New(t,
		configModule(data, discardLogger()),
		extension.NewModule(extension.WithPath("app:social_post"), extension.WithSchema(mastodon)),
		fx.Populate(&store),
	)

	app.RequireStart()
	defer app.RequireStop()

	visibility, err := parameters.Lookup[string](store, "social_post.configuration.mastodon.visibility")
	require.NoError(t, err)
	assert.Equal(t, "public", visibility)
}

func TestNewModule_ValidationFailureAbortsStart(t *testing.T) {
	t.Parallel()

	data := `
social_post:
    publish_on: [facebook, twitter]
    providers:
        twitter:
            consumer_key: "some-consumer-key"
`

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fx.New(
		configModule(data, logger),
		extension.NewModule(),
		fx.Invoke(func(*parameters.Store) {}),
		fx.NopLogger,
	)

	err := app.Err()
	require.Error(t, err)
	require.ErrorIs(t, err, configuration.ErrMissingProviderConfiguration)
	require.ErrorIs(t, err, configuration.ErrMissingRequiredField)

	output := buf.String()
	assert.Equal(t, 4, strings.Count(output, "invalid social_post configuration"))
	assert.Contains(t, output, `"kind":"MissingProviderConfiguration"`)
	assert.Contains(t, output, `"field":"access_token_secret"`)
}

func TestNewModule_EmptyPublishOn(t *testing.T) {
	t.Parallel()

	app := fx.New(
		configModule("social_post:\n    publish_on: []\n", discardLogger()),
		extension.NewModule(),
		fx.Invoke(func(*configuration.Normalized) {}),
		fx.NopLogger,
	)

	err := app.Err()
	require.ErrorIs(t, err, configuration.ErrEmptyPublishTargets)
}

func TestNewModule_EmptySectionReportsEmptyPublishTargets(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"social_post: {}\n", "social_post: ~\n"} {
		app := fx.New(
			configModule(data, discardLogger()),
			extension.NewModule(),
			fx.Invoke(func(*configuration.Normalized) {}),
			fx.NopLogger,
		)

		err := app.Err()
		require.ErrorIs(t, err, configuration.ErrEmptyPublishTargets, data)
		require.NotErrorIs(t, err, config.ErrEmptySection, data)
	}
}

func TestNewModule_MissingSection(t *testing.T) {
	t.Parallel()

	app := fx.New(
		configModule("other: {}\n", discardLogger()),
		extension.NewModule(),
		fx.Invoke(func(*configuration.Normalized) {}),
		fx.NopLogger,
	)

	err := app.Err()
	require.ErrorIs(t, err, yamlparser.ErrPathNotFound)
}

func TestNewModule_LogsProvidersWithRedactedSecrets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{
		Level:  "info",
		Redact: configuration.SecretFields(),
	}, &buf)

	app := fxtest.New(t,
		configModule(minimalYAML, logger),
		extension.NewModule(),
		fx.Invoke(func(*configuration.Normalized) {}),
	)

	app.RequireStart()
	defer app.RequireStop()

	output := buf.String()
	assert.Contains(t, output, "social_post configuration loaded")
	assert.Contains(t, output, `"page_id":"681"`)
	assert.Contains(t, output, `"consumer_key":"some-consumer-key"`)
	assert.NotContains(t, output, "some-secret")
	assert.NotContains(t, output, "some-consumer-secret")
	assert.Contains(t, output, logging.Redacted)
}

func TestNewModule_MasksCustomSchemaSecrets(t *testing.T) {
	t.Parallel()

	data := `
social_post:
    publish_on: [mastodon]
    providers:
        mastodon:
            api_key: "TOPSECRET"
            instance: "social.example"
`

	mastodon := configuration.Schema{
		Provider: "mastodon",
		Fields: []configuration.Field{
			{Name: "api_key", Required: true, Secret: true},
			{Name: "instance", Required: true},
		},
	}

	var (
		buf       bytes.Buffer
		validator *configuration.Validator
	)

	app := fxtest.New(t,
		configModule(data, slog.New(slog.NewJSONHandler(&buf, nil))),
		extension.NewModule(extension.WithSchema(mastodon)),
		fx.Populate(&validator),
	)

	app.RequireStart()
	defer app.RequireStop()

	output := buf.String()
	assert.Contains(t, output, "social_post configuration loaded")
	assert.Contains(t, output, `"instance":"social.example"`)
	assert.Contains(t, output, `"api_key":"`+parameters.Redacted+`"`)
	assert.NotContains(t, output, "TOPSECRET")
	assert.Contains(t, validator.SecretFields(), "api_key")
}

func TestNewValidator_IncludesCustomSchemas(t *testing.T) {
	t.Parallel()

	custom := configuration.Schema{
		Provider: "mastodon",
		Fields:   []configuration.Field{{Name: "api_key", Required: true, Secret: true}},
	}

	assert.Equal(t, configuration.SecretFields(), extension.NewValidator().SecretFields())
	assert.Contains(t, extension.NewValidator(extension.WithSchema(custom)).SecretFields(), "api_key")

	_, ok := extension.NewValidator(extension.WithSchema(custom)).Schema("mastodon")
	assert.True(t, ok)
}

func TestParameterName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "social_post.configuration", extension.ParameterName())
	assert.Equal(t, "social_post.configuration.publish_on", extension.ParameterName("publish_on"))
	assert.Equal(t, "social_post.configuration.facebook.page_id", extension.ParameterName("facebook", "page_id"))
}

func TestLoad_Direct(t *testing.T) {
	t.Parallel()

	normalized, err := configuration.Validate(config.Document{
		"publish_on": []any{"twitter"},
		"providers": config.Document{
			"twitter": config.Document{
				"consumer_key":        "k",
				"consumer_secret":     "s",
				"access_token":        "t",
				"access_token_secret": "ts",
			},
		},
	})
	require.NoError(t, err)

	store := parameters.NewStore()
	extension.Load(store, normalized)

	assert.Equal(t, []string{
		"social_post.configuration.publish_on",
		"social_post.configuration.twitter",
		"social_post.configuration.twitter.access_token",
		"social_post.configuration.twitter.access_token_secret",
		"social_post.configuration.twitter.consumer_key",
		"social_post.configuration.twitter.consumer_secret",
	}, store.Names())
}
