package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/cookquest/internal/curriculum"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the quest curriculum into the database",
	Long:  "Seeds quests, lessons, and minigames. Runs once: with quests already present it changes nothing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cur := curriculum.Default()
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()
			cur, err = curriculum.Load(f)
			if err != nil {
				return fmt.Errorf("load curriculum %s: %w", file, err)
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		inserted, err := s.Seed(cmd.Context(), cur)
		if err != nil {
			return err
		}
		if inserted == 0 {
			fmt.Println("already seeded, nothing to do")
			return nil
		}
		fmt.Printf("seeded %d quests\n", inserted)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("file", "", "Curriculum JSON file (defaults to the built-in curriculum)")
}
