package main

import (
	"fmt"

	"github.com/Gobd/jsonschema"
	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format NAME VALUE",
		Short: "Check a single value against a named format",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			name, value := args[0], args[1]
			s, err := jsonschema.FromNode(nil)
			if err != nil {
				return err
			}
			if err := s.CheckFormat(value, &jsonschema.Node{Format: name}, "value"); err != nil {
				fmt.Fprintln(a.stdout, err)
				a.log.Debug("format check failed", "format", name, "error", err)
				return errInvalid
			}
			fmt.Fprintf(a.stdout, "%q is a valid %s\n", value, name)
			return nil
		},
	}
}

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the built-in format names",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			for _, name := range jsonschema.DefaultRegistry.Names() {
				fmt.Fprintln(a.stdout, name)
			}
		},
	}
}
