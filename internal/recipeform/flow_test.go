package recipeform_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	mockedclient "github.com/remirami/RecipeBank/internal/mocks/recipeclient"
	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	"github.com/remirami/RecipeBank/internal/recipeform"
	"github.com/stretchr/testify/require"
)

func TestCreateFlow(t *testing.T) {
	t.Run("Successful submission clears the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service := mockedclient.NewMockService(ctrl)

		draft := soupDraft()
		service.EXPECT().
			RecipeNameExists(gomock.Any(), draft.Name).
			Return(false, nil)
		service.EXPECT().
			CreateRecipe(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req recipeModel.CreateRequest) (string, error) {
				require.Equal(t, draft.Name, req.Name)
				require.Equal(t, "user-1", req.UserID)
				return "abc123", nil
			})

		flow := recipeform.NewCreateFlow(service)
		id, err := flow.Submit(context.Background(), &draft, "user-1")
		require.NoError(t, err)
		require.Equal(t, "abc123", id)
		require.Equal(t, recipeform.StateSucceeded, flow.State())
		require.Equal(t, recipeModel.Draft{}, draft)
	})

	t.Run("Validation failure returns to editing with the draft intact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service := mockedclient.NewMockService(ctrl)

		draft := soupDraft()
		draft.Name = ""

		flow := recipeform.NewCreateFlow(service)
		_, err := flow.Submit(context.Background(), &draft, "user-1")

		var validationErr *recipeform.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.NotEmpty(t, validationErr.Fields.Name)
		require.Equal(t, recipeform.StateEditing, flow.State())
		require.Equal(t, "", draft.Name)
		require.NotEmpty(t, draft.Instructions)
	})

	t.Run("Name conflict blocks submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service := mockedclient.NewMockService(ctrl)

		draft := soupDraft()
		service.EXPECT().
			RecipeNameExists(gomock.Any(), draft.Name).
			Return(true, nil)

		flow := recipeform.NewCreateFlow(service)
		_, err := flow.Submit(context.Background(), &draft, "user-1")
		require.ErrorIs(t, err, recipeform.ErrNameConflict)
		require.Equal(t, recipeform.StateEditing, flow.State())
		require.Equal(t, "Soup", draft.Name)
	})

	t.Run("Server failure preserves the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service := mockedclient.NewMockService(ctrl)

		draft := soupDraft()
		service.EXPECT().
			RecipeNameExists(gomock.Any(), draft.Name).
			Return(false, nil)
		service.EXPECT().
			CreateRecipe(gomock.Any(), gomock.Any()).
			Return("", errors.New("boom"))

		flow := recipeform.NewCreateFlow(service)
		_, err := flow.Submit(context.Background(), &draft, "user-1")
		require.Error(t, err)
		require.Equal(t, recipeform.StateEditing, flow.State())
		require.Equal(t, "Soup", draft.Name)
	})

	t.Run("Second submission while one is in flight is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service := mockedclient.NewMockService(ctrl)

		started := make(chan struct{})
		release := make(chan struct{})
		service.EXPECT().
			RecipeNameExists(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string) (bool, error) {
				close(started)
				<-release
				return false, nil
			})
		service.EXPECT().
			CreateRecipe(gomock.Any(), gomock.Any()).
			Return("abc123", nil)

		flow := recipeform.NewCreateFlow(service)
		first := soupDraft()

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := flow.Submit(context.Background(), &first, "user-1")
			require.NoError(t, err)
		}()

		<-started
		second := soupDraft()
		_, err := flow.Submit(context.Background(), &second, "user-1")
		require.ErrorIs(t, err, recipeform.ErrSubmissionInFlight)

		close(release)
		wg.Wait()
	})

	t.Run("Submitting after success is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service := mockedclient.NewMockService(ctrl)

		service.EXPECT().RecipeNameExists(gomock.Any(), gomock.Any()).Return(false, nil)
		service.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).Return("abc123", nil)

		flow := recipeform.NewCreateFlow(service)
		draft := soupDraft()
		_, err := flow.Submit(context.Background(), &draft, "user-1")
		require.NoError(t, err)

		retry := soupDraft()
		_, err = flow.Submit(context.Background(), &retry, "user-1")
		require.ErrorIs(t, err, recipeform.ErrAlreadySubmitted)
	})
}

func TestEditFlow(t *testing.T) {
	t.Run("Own name skips the duplicate check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service := mockedclient.NewMockService(ctrl)

		draft := soupDraft()
		service.EXPECT().
			UpdateRecipe(gomock.Any(), "abc123", gomock.Any()).
			Return(recipeModel.Recipe{ID: "abc123"}, nil)

		flow := recipeform.NewEditFlow(service, "abc123", draft.Name)
		id, err := flow.Submit(context.Background(), &draft, "user-1")
		require.NoError(t, err)
		require.Equal(t, "abc123", id)
	})

	t.Run("Renaming still checks the new name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service := mockedclient.NewMockService(ctrl)

		draft := soupDraft()
		draft.Name = "Better Soup"
		service.EXPECT().
			RecipeNameExists(gomock.Any(), "Better Soup").
			Return(true, nil)

		flow := recipeform.NewEditFlow(service, "abc123", "Soup")
		_, err := flow.Submit(context.Background(), &draft, "user-1")
		require.ErrorIs(t, err, recipeform.ErrNameConflict)
	})
}
