package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/socialpost/socialpost/configuration"
	"github.com/socialpost/socialpost/extension"
	"github.com/socialpost/socialpost/parameters"

	"github.com/spf13/cobra"
)

func newParamsCmd(opts *rootOptions) *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "params <file|->",
		Short: "Print the parameters materialized from a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			normalized, err := configuration.Validate(doc)
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			store := parameters.NewStore()
			extension.Load(store, normalized)

			out, err := renderParameters(store, showSecrets)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print credentials instead of "+parameters.Redacted)

	return cmd
}

// renderParameters prints the store as YAML, one top-level key per parameter in sorted order.
func renderParameters(store *parameters.Store, showSecrets bool) ([]byte, error) {
	redact := parameters.SecretRedactor(configuration.SecretFields())

	var items yaml.MapSlice

	for _, name := range store.Names() {
		value, err := store.Get(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		if !showSecrets {
			value = parameters.Mask(name, value, redact)
		}

		items = append(items, yaml.MapItem{Key: name, Value: value})
	}

	out, err := yaml.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("rendering parameters: %w", err)
	}

	return out, nil
}
