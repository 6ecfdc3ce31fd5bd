package recipeclient

import (
	"context"

	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	userModel "github.com/remirami/RecipeBank/internal/models/user"
)

// Service is the full REST surface the client consumes.
type Service interface {
	ListRecipes(ctx context.Context) ([]recipeModel.Recipe, error)
	GetRecipe(ctx context.Context, id string) (recipeModel.Recipe, error)
	CreateRecipe(ctx context.Context, req recipeModel.CreateRequest) (string, error)
	UpdateRecipe(ctx context.Context, id string, req recipeModel.UpdateRequest) (recipeModel.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	RandomRecipe(ctx context.Context) (recipeModel.Recipe, error)
	Search(ctx context.Context, req recipeModel.SearchRequest) ([]recipeModel.Recipe, error)
	RecipeNameExists(ctx context.Context, name string) (bool, error)

	Login(ctx context.Context, req userModel.LoginRequest) (userModel.LoginResponse, error)
	Register(ctx context.Context, req userModel.RegisterRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ConfirmEmail(ctx context.Context, token string) error

	Profile(ctx context.Context) (userModel.User, error)
	UserRecipes(ctx context.Context) ([]recipeModel.Recipe, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
