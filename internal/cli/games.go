package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the active game catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard <game-id>",
		Short: "Show the top scores for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LeaderboardEntry

			if err := client.Get(fmt.Sprintf("/api/v1/leaderboard/%s", args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
