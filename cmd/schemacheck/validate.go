package main

import (
	"fmt"

	"github.com/Gobd/jsonschema/loader"
	"github.com/Gobd/jsonschema/transform"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var trim bool
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate data files against the schema",
		Long: `Validates each data file against the schema given with --schema and
prints one line per file. Exits non-zero when any file is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := a.loadSchema()
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range args {
				data, err := loader.ReadFile(path)
				if err != nil {
					return err
				}
				if trim {
					data = transform.TrimSpace(data)
				}
				if err := s.Validate(data); err != nil {
					failed++
					a.log.Debug("document rejected", "path", path, "error", err)
					fmt.Fprintf(a.stdout, "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(a.stdout, "%s: valid\n", path)
			}

			if failed > 0 {
				a.log.Warn("validation failed", "invalid", failed, "total", len(args))
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trim, "trim", false, "trim surrounding whitespace from every string before validating")
	return cmd
}
