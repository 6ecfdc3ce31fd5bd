// Package cli is the command-line front end: it maps the application's
// flows (auth, recipe authoring, search, profile) onto a cobra command
// tree around the shared factory.
package cli

import (
	"errors"

	recipeClientFactory "github.com/remirami/RecipeBank/internal/factories/recipe-client-factory"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("you must be logged in; run 'recipebank login' first")

// New builds the root command.
func New(factory *recipeClientFactory.Factory) *cobra.Command {
	root := &cobra.Command{
		Use:           "recipebank",
		Short:         "Share, search and manage recipes",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCommand(factory),
		newLogoutCommand(factory),
		newRegisterCommand(factory),
		newWhoamiCommand(factory),
		newRecipesCommand(factory),
		newSearchCommand(factory),
		newProfileCommand(factory),
		newPasswordCommand(factory),
		newConfirmEmailCommand(factory),
	)
	return root
}

// requireLogin fails fast when no usable credential is held, instead of
// letting the server answer 401 later.
func requireLogin(factory *recipeClientFactory.Factory) (userID string, err error) {
	if factory.Session.IsTokenExpired() {
		return "", errNotLoggedIn
	}
	return factory.Session.State().UserID, nil
}
