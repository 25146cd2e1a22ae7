package cli

import (
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score submission and history commands",
	}

	cmd.AddCommand(newScoreSubmitCmd())
	cmd.AddCommand(newScoreHistoryCmd())

	return cmd
}

func newScoreSubmitCmd() *cobra.Command {
	var gameID int64
	var score int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a play result",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"game_id": gameID,
				"score":   score,
			}
			var result ScoreResult

			if err := client.Post("/api/v1/scores", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&gameID, "game", 0, "Game ID (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Score value (required)")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newScoreHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show your play history, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []UserScore

			if err := client.Get("/api/v1/users/me/scores", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
