package cli

import (
	"fmt"

	recipeClientFactory "github.com/remirami/RecipeBank/internal/factories/recipe-client-factory"
	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	"github.com/spf13/cobra"
)

func newSearchCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	var req recipeModel.SearchRequest

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search recipes by term, category, food type or dietary preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				req.SearchTerm = args[0]
			}

			recipes, err := factory.Client.Search(cmd.Context(), req)
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes found.")
				return nil
			}
			for _, recipe := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", recipe.ID, titleStyle.Render(recipe.Name))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Category, "category", "", "category filter")
	cmd.Flags().BoolVar(&req.ByLikes, "likes", false, "order results by likes")
	cmd.Flags().StringVar(&req.FoodType, "food-type", "", "food main type filter")
	cmd.Flags().StringVar(&req.SubType, "sub-type", "", "food subtype filter")
	cmd.Flags().StringVar(&req.DietaryPreference, "dietary-preference", "", "dietary preference filter")
	cmd.Flags().StringVar(&req.CookTime, "cook-time", "", "maximum cook time in minutes")
	return cmd
}
