// Package extension wires social_post configuration into an Fx application.
//
// The module reads the "social_post" section through the injected config.Parser and
// config.DataFetcher, validates it with the configuration package and registers the
// result in a parameters.Store under the social_post.configuration namespace.
//
//	fx.New(
//	    fx.Provide(fx.Annotate(yamlparser.NewParser, fx.As(new(config.Parser)))),
//	    fx.Provide(fx.Annotate(filefetcher.NewFetcher("config.yaml"), fx.As(new(config.DataFetcher)))),
//	    extension.NewModule(),
//	)
package extension
