package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/resetalabs/resetapad/internal/config"
	"github.com/resetalabs/resetapad/internal/server"
	"github.com/resetalabs/resetapad/internal/store"
	"github.com/resetalabs/resetapad/internal/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the letterhead editor server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		db, err := store.Open(cfg.Database.Path)
		if err != nil {
			return err
		}
		views, err := view.NewEngine()
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           server.New(store.New(db), views, cfg),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Printf("resetapad listening on http://%s", cfg.Server.Addr())
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
