package main

import (
	"fmt"
	"io"
	"os"

	"github.com/socialpost/socialpost/config"
	filefetcher "github.com/socialpost/socialpost/config/fetcher/file"
	"github.com/socialpost/socialpost/config/fetcher/static"
	yamlparser "github.com/socialpost/socialpost/config/parser/yaml"
	"github.com/socialpost/socialpost/extension"

	"github.com/spf13/cobra"
)

const stdinArg = "-"

type rootOptions struct {
	path      string
	logLevel  string
	expandEnv bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "socialpost",
		Short:         "Validate and inspect social_post publishing configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.path, "path", extension.DefaultPath,
		"colon-separated path of the social_post section")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&opts.expandEnv, "expand-env", false, "expand $VAR and ${VAR} in the file")

	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newParamsCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// fetcher returns a DataFetcher for a file argument, or for stdin when the argument is "-".
func (o *rootOptions) fetcher(cmd *cobra.Command, arg string) (config.DataFetcher, error) {
	if arg == stdinArg {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		if o.expandEnv {
			data = []byte(os.ExpandEnv(string(data)))
		}

		return static.New(data), nil
	}

	var fileOpts []filefetcher.Option
	if o.expandEnv {
		fileOpts = append(fileOpts, filefetcher.WithEnvExpansion())
	}

	fetcher, err := filefetcher.NewFetcher(arg, fileOpts...)()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return fetcher, nil
}

func (o *rootOptions) loadDocument(cmd *cobra.Command, arg string) (config.Document, error) {
	fetcher, err := o.fetcher(cmd, arg)
	if err != nil {
		return nil, err
	}

	doc, err := config.LoadSection(yamlparser.NewParser(), fetcher, o.path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", arg, err)
	}

	return doc, nil
}
