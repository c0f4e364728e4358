package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get [PATH]",
		Short: "Print the schema node at a dotted path",
		Long: `Prints the node of the schema document at PATH as YAML, for example
"properties.price". Without PATH the whole document is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := a.loadSchema()
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			node, err := s.GetByPath(path)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(node); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
