package main

import (
	"fmt"

	"github.com/socialpost/socialpost/configuration"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->",
		Short: "Validate a social_post configuration file",
		Long:  "Check the social_post section against the provider schemas and report every violation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			normalized, err := configuration.Validate(doc)
			if err != nil {
				violations := configuration.Violations(err)

				for _, violation := range violations {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", violation)
				}

				return fmt.Errorf("configuration validation failed with %d violation(s): %w", len(violations), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid, publishing on %v\n", args[0], normalized.PublishOn())

			return nil
		},
	}
}
