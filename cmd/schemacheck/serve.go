package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/Gobd/jsonschema/openapi"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		f    docFlags
		addr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a Swagger UI for the schema's OpenAPI document under /swagger/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.buildDoc(&f)
			if err != nil {
				return err
			}
			h, err := openapi.SwaggerHandler("/swagger/", doc)
			if err != nil {
				return err
			}
			mux := http.NewServeMux()
			mux.Handle("/swagger/", h)

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			return a.serve(cmd.Context(), ln, mux)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	return cmd
}

// serve runs an HTTP server on ln until ctx is cancelled.
func (a *app) serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log.Error("shutdown", "error", err)
		}
	}()

	a.log.Info("serving swagger ui", "addr", ln.Addr().String(), "path", "/swagger/")
	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
