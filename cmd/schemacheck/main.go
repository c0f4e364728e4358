// Command schemacheck validates JSON or YAML data files against a schema
// document and inspects schema documents.
//
//	schemacheck validate --schema network.json config.yaml
//	schemacheck get --schema network.json properties.dns
//	schemacheck format host-name myvault
//	schemacheck serve --schema network.json --path /config/network
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
