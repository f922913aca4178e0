package main

import (
	"errors"

	"github.com/socialpost/socialpost"
	filefetcher "github.com/socialpost/socialpost/config/fetcher/file"
	"github.com/socialpost/socialpost/extension"
	"github.com/socialpost/socialpost/listener"

	"github.com/spf13/cobra"
)

const defaultInspectAddress = "127.0.0.1:8081"

var errStdinNotSupported = errors.New("serve needs a file path, stdin is not supported")

func newServeCmd(opts *rootOptions) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve the materialized parameters over HTTP until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinArg {
				return errStdinNotSupported
			}

			var fileOpts []filefetcher.Option
			if opts.expandEnv {
				fileOpts = append(fileOpts, filefetcher.WithEnvExpansion())
			}

			app := socialpost.NewApp(
				socialpost.WithLogLevel(opts.logLevel),
				socialpost.WithLogOutput(cmd.ErrOrStderr()),
				socialpost.WithConfigFile(args[0], fileOpts...),
				socialpost.WithExtensionOptions(extension.WithPath(opts.path)),
				socialpost.WithInspectListener("inspect", listener.WithAddress(address)),
			)

			if err := app.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			app.Run()

			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", defaultInspectAddress, "listen address of the inspection endpoint")

	return cmd
}
