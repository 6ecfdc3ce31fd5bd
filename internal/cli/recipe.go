package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	recipeClientFactory "github.com/remirami/RecipeBank/internal/factories/recipe-client-factory"
	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	"github.com/remirami/RecipeBank/internal/recipeform"
	"github.com/spf13/cobra"
)

func newRecipesCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse and author recipes",
	}
	cmd.AddCommand(
		newRecipesListCommand(factory),
		newRecipesGetCommand(factory),
		newRecipesRandomCommand(factory),
		newRecipesCreateCommand(factory),
		newRecipesEditCommand(factory),
		newRecipesDeleteCommand(factory),
	)
	return cmd
}

func newRecipesListCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := factory.Client.ListRecipes(cmd.Context())
			if err != nil {
				return err
			}
			for _, recipe := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", recipe.ID, titleStyle.Render(recipe.Name))
			}
			return nil
		},
	}
}

func newRecipesGetCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := factory.Client.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRecipe(recipe))
			return nil
		},
	}
}

func newRecipesRandomCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a randomly picked recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := factory.Client.RandomRecipe(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRecipe(recipe))
			return nil
		},
	}
}

func newRecipesCreateCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	var draftFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate a draft file and submit it as a new recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin(factory)
			if err != nil {
				return err
			}
			draft, err := loadDraft(draftFile)
			if err != nil {
				return err
			}

			flow := recipeform.NewCreateFlow(factory.Client)
			id, err := flow.Submit(cmd.Context(), &draft, userID)
			if err != nil {
				return submissionError(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Recipe created successfully!"))
			fmt.Fprintln(cmd.OutOrStdout(), "id:", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&draftFile, "file", "f", "", "path to the draft JSON file")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newRecipesEditCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	var draftFile string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Validate a draft file and submit it over an existing recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin(factory)
			if err != nil {
				return err
			}

			existing, err := factory.Client.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if existing.UserID != "" && existing.UserID != userID {
				return errors.New("you do not have permission to edit this recipe")
			}

			draft, err := loadDraft(draftFile)
			if err != nil {
				return err
			}

			flow := recipeform.NewEditFlow(factory.Client, existing.ID, existing.Name)
			id, err := flow.Submit(cmd.Context(), &draft, userID)
			if err != nil {
				return submissionError(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Recipe updated successfully!"))
			fmt.Fprintln(cmd.OutOrStdout(), "id:", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&draftFile, "file", "f", "", "path to the draft JSON file")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newRecipesDeleteCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(factory); err != nil {
				return err
			}
			if err := factory.Client.DeleteRecipe(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Recipe deleted."))
			return nil
		},
	}
}

func loadDraft(path string) (recipeModel.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return recipeModel.Draft{}, fmt.Errorf("could not read draft file: %w", err)
	}

	var draft recipeModel.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return recipeModel.Draft{}, fmt.Errorf("could not parse draft file: %w", err)
	}
	if err := recipeform.VerifyCompatibility(draft); err != nil {
		return recipeModel.Draft{}, err
	}
	return draft, nil
}

// submissionError renders validation errors field by field; other
// submission failures pass through so the draft can be fixed and resent.
func submissionError(cmd *cobra.Command, err error) error {
	var validationErr *recipeform.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprint(cmd.OutOrStdout(), renderFieldErrors(validationErr.Fields))
		return errors.New("the draft did not pass validation")
	}
	if errors.Is(err, recipeform.ErrNameConflict) {
		return errors.New("a recipe with this name already exists; pick another name")
	}
	return err
}
