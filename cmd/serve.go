package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/cookquest/internal/api"
	"github.com/abhisek/cookquest/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real env vars win either way.
		_ = godotenv.Load()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = os.Getenv("COOKQUEST_ADDR")
		}
		if addr == "" {
			addr = ":8080"
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		return api.NewServer(addr, session.NewService(s), s).Run()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides COOKQUEST_ADDR env var, default :8080)")
}
