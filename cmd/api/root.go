package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goodudetheboy/Floowy-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Serve the Floowy song recommendation API.",
		Long:          `Serves recommendation, playlist genre, lyric analysis and song generation endpoints over HTTP.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on (env HTTP_ADDR)")
	cmd.Flags().String("config", "", "Path to a YAML config file")
	if err := v.BindPFlag("http_addr", cmd.Flags().Lookup("addr")); err != nil {
		panic(fmt.Sprintf("bind --addr: %v", err))
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests within cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg config.Config) error {
	for _, name := range cfg.MissingCredentials() {
		log.Printf("WARN: %s is not set; requests needing it will fail", name)
	}

	handler := buildHandler(ctx, cfg)

	log.Println("------------------------------------------------")
	log.Printf("Floowy API is running on %s (llm provider: %s)", cfg.HTTPAddr, cfg.LLMProvider)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
