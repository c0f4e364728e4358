package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/Gobd/jsonschema"
	"github.com/Gobd/jsonschema/internal/logging"
	"github.com/Gobd/jsonschema/loader"
	"github.com/spf13/cobra"
)

// errInvalid is returned when at least one document failed validation. The
// details have already been printed.
var errInvalid = errors.New("validation failed")

// app holds the state shared by all subcommands.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	schemaPath string
	verbose    bool
	log        *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: logging.NewNop()}

	root := &cobra.Command{
		Use:           "schemacheck",
		Short:         "Validate data against JSON schema documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = logging.New(a.stderr, level)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&a.schemaPath, "schema", "s", "", "schema document (.json, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newValidateCmd(a),
		newGetCmd(a),
		newFormatCmd(a),
		newFormatsCmd(a),
		newOpenAPICmd(a),
		newServeCmd(a),
	)
	return root
}

// loadSchema reads and checks the document named by --schema.
func (a *app) loadSchema() (*jsonschema.Schema, error) {
	if a.schemaPath == "" {
		return nil, errors.New("--schema is required")
	}
	doc, err := loader.ReadSchema(a.schemaPath)
	if err != nil {
		return nil, err
	}
	s, err := jsonschema.New(doc)
	if err != nil {
		return nil, err
	}
	a.log.Debug("schema loaded", "path", a.schemaPath)
	return s, nil
}
