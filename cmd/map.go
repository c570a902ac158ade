package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cookquest/internal/render"
	"github.com/abhisek/cookquest/internal/session"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the learner's quest map",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		board, err := session.NewService(s).Board(cmd.Context(), learnerID)
		if err != nil {
			return err
		}
		if len(board) == 0 {
			fmt.Println("no quests found — run `cookquest seed` first")
			return nil
		}
		fmt.Println(render.QuestMap(learnerID, board))
		return nil
	},
}

func init() {
	mapCmd.Flags().String("learner", "default", "Learner id")
}
