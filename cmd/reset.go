package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a learner's quest progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.ProgressRepo().DeleteLearner(cmd.Context(), learnerID)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Printf("no progress found for %s\n", learnerID)
			return nil
		}
		fmt.Printf("reset %d quests for %s\n", n, learnerID)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("learner", "default", "Learner id")
}
