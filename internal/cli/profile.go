package cli

import (
	"fmt"

	recipeClientFactory "github.com/remirami/RecipeBank/internal/factories/recipe-client-factory"
	"github.com/spf13/cobra"
)

func newProfileCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in user's profile and recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(factory); err != nil {
				return err
			}

			user, err := factory.Client.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(user.Username))
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("Email: ")+user.Email)

			recipes, err := factory.Client.UserRecipes(cmd.Context())
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("Recipes:"))
			for _, recipe := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", recipe.ID, recipe.Name)
			}
			return nil
		},
	}
}
