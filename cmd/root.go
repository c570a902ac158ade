package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/cookquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cookquest",
	Short: "Cooking quest map for young chefs",
	Long:  "CookQuest — a quest map that teaches kitchen skills through lessons and minigames, unlocking quests as prerequisites are completed.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COOKQUEST_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COOKQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store at the resolved path and migrates the schema.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
