package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cookquest/internal/render"
	"github.com/abhisek/cookquest/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learner's minigame attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := session.NewService(s).Attempts(cmd.Context(), learnerID)
		if err != nil {
			return err
		}
		quests, err := s.QuestRepo().ListAll(cmd.Context())
		if err != nil {
			return err
		}
		titles := make(map[int]string, len(quests))
		for _, q := range quests {
			titles[q.ID] = q.Title
		}

		fmt.Println(render.AttemptHistory(learnerID, attempts, titles))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("learner", "default", "Learner id")
}
