package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin catalog commands (requires an admin session)",
	}

	games := &cobra.Command{
		Use:   "games",
		Short: "Manage the game catalog",
	}
	games.AddCommand(newAdminGamesListCmd())
	games.AddCommand(newAdminGamesAddCmd())
	games.AddCommand(newAdminGamesRemoveCmd())

	cmd.AddCommand(games)
	return cmd
}

func newAdminGamesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games, including inactive ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/v1/admin/games", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newAdminGamesAddCmd() *cobra.Command {
	var name, description, thumbnail, path string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a game to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":        name,
				"description": description,
				"thumbnail":   thumbnail,
				"file_path":   path,
			}
			var result Game

			if err := client.Post("/api/v1/admin/games", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Game description")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "Thumbnail path")
	cmd.Flags().StringVar(&path, "path", "", "Launch path (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func newAdminGamesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <game-id>",
		Short: "Deactivate a game (soft delete, keeps score history)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/admin/games/%s", args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Game deactivated")
			return nil
		},
	}
}
