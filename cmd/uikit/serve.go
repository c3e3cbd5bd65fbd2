package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/networkteam/uikit/gallery"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		pathPrefix string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the button gallery and playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := slog.Default().With("component", "serve")

			handler := newServeHandler(pathPrefix, title, slog.Default())
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting server", slog.String("addr", addr), slog.String("pathPrefix", pathPrefix))
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serving gallery: %w", err)
				}
				return nil
			case <-ctx.Done():
				logger.Info("Shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":1095", "address to listen on")
	cmd.Flags().StringVar(&pathPrefix, "path-prefix", "", "path prefix to mount the gallery at (e.g. /_uikit)")
	cmd.Flags().StringVar(&title, "title", "UI Kit", "gallery title")

	return cmd
}

func newServeHandler(pathPrefix, title string, logger *slog.Logger) http.Handler {
	pathPrefix = strings.TrimSuffix(pathPrefix, "/")

	handler := gallery.NewHandler(
		gallery.WithPathPrefix(pathPrefix),
		gallery.WithTitle(title),
		gallery.WithLogger(logger),
	)
	if pathPrefix == "" {
		return handler
	}

	mux := http.NewServeMux()
	mux.Handle(pathPrefix+"/", http.StripPrefix(pathPrefix, handler))
	mux.Handle("/{$}", http.RedirectHandler(pathPrefix+"/", http.StatusTemporaryRedirect))
	return mux
}
