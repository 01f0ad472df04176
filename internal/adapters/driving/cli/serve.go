package cli

import (
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/orion-labs/orionwiki/internal/adapters/driving/httpapi"
	"github.com/orion-labs/orionwiki/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the OrionWiki HTTP API",
	Long: `Starts an HTTP server exposing the wiki generation, ask and deep
research operations as a JSON API under /api.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if askService == nil || researchService == nil || wikiService == nil {
			return errors.New("services not configured")
		}

		router := httpapi.NewRouter(askService, researchService, wikiService)
		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		logger.Info("listening on %s", serveAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
