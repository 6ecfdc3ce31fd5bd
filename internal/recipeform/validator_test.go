package recipeform_test

import (
	"strings"
	"testing"

	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	"github.com/remirami/RecipeBank/internal/recipeform"
	"github.com/remirami/RecipeBank/pkg/tools/random"
	"github.com/stretchr/testify/require"
)

func soupDraft() recipeModel.Draft {
	return recipeModel.Draft{
		Name:         "Soup",
		PrepTime:     "10",
		CookTime:     "20",
		FoodCategory: recipeModel.FoodCategory{MealType: "Main Course"},
		IngredientGroups: []recipeModel.IngredientGroup{
			{
				Ingredients: []recipeModel.Ingredient{
					{Name: "Carrot", Quantity: "2", Unit: "piece"},
				},
			},
		},
		Instructions: []string{"Chop carrots", "Boil"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("Well formed draft passes with no errors", func(t *testing.T) {
		fieldErrors, ok := recipeform.Validate(soupDraft())
		require.True(t, ok)
		require.True(t, fieldErrors.Empty())
		require.Empty(t, fieldErrors.Messages())
	})

	t.Run("Empty name fails with a name error", func(t *testing.T) {
		draft := soupDraft()
		draft.Name = "   "

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.Name)
	})

	t.Run("Name over 50 characters fails", func(t *testing.T) {
		draft := soupDraft()
		draft.Name = random.String(51)

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.Name)
	})

	t.Run("Description over 400 characters fails", func(t *testing.T) {
		draft := soupDraft()
		draft.Description = random.String(401)

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.Description)
	})

	t.Run("Missing meal type fails", func(t *testing.T) {
		draft := soupDraft()
		draft.FoodCategory.MealType = ""

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.FoodCategory.MealType)
	})

	t.Run("Prep time of zero fails with a prepTime message", func(t *testing.T) {
		draft := soupDraft()
		draft.PrepTime = "0"

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.PrepTime)
		require.Empty(t, fieldErrors.CookTime)
	})

	t.Run("Non-numeric prep time fails with a prepTime message", func(t *testing.T) {
		draft := soupDraft()
		draft.PrepTime = "ten"

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.PrepTime)
	})

	t.Run("Serving size bounds", func(t *testing.T) {
		for _, servingSize := range []string{"0", "-1", "101", "four"} {
			draft := soupDraft()
			draft.ServingSize = servingSize

			fieldErrors, ok := recipeform.Validate(draft)
			require.False(t, ok, "servingSize %q should fail", servingSize)
			require.NotEmpty(t, fieldErrors.ServingSize)
		}

		draft := soupDraft()
		draft.ServingSize = "100"
		_, ok := recipeform.Validate(draft)
		require.True(t, ok)
	})

	t.Run("Missing ingredient fields are reported per leaf", func(t *testing.T) {
		draft := soupDraft()
		draft.IngredientGroups[0].Ingredients = append(draft.IngredientGroups[0].Ingredients,
			recipeModel.Ingredient{Name: "", Quantity: ""})

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.IngredientGroups[0].Ingredients[1].Name)
		require.NotEmpty(t, fieldErrors.IngredientGroups[0].Ingredients[1].Quantity)
		require.True(t, fieldErrors.IngredientGroups[0].Ingredients[0].Name == "")
	})

	t.Run("Negative quantity fails", func(t *testing.T) {
		draft := soupDraft()
		draft.IngredientGroups[0].Ingredients[0].Quantity = "-2"

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.IngredientGroups[0].Ingredients[0].Quantity)
	})

	t.Run("Unknown unit fails", func(t *testing.T) {
		draft := soupDraft()
		draft.IngredientGroups[0].Ingredients[0].Unit = "handful"

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.IngredientGroups[0].Ingredients[0].Unit)
	})

	t.Run("Ingredient names differing only in case are duplicates", func(t *testing.T) {
		draft := soupDraft()
		draft.IngredientGroups[0].Ingredients = append(draft.IngredientGroups[0].Ingredients,
			recipeModel.Ingredient{Name: "CARROT", Quantity: "1", Unit: "piece"})

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.IngredientGroups[0].Group)
	})

	t.Run("Same ingredient name in different groups is allowed", func(t *testing.T) {
		draft := soupDraft()
		draft.IngredientGroups = append(draft.IngredientGroups, recipeModel.IngredientGroup{
			Title: "Garnish",
			Ingredients: []recipeModel.Ingredient{
				{Name: "Carrot", Quantity: "1", Unit: "piece"},
			},
		})

		_, ok := recipeform.Validate(draft)
		require.True(t, ok)
	})

	t.Run("Duplicate instructions fail with only that error", func(t *testing.T) {
		draft := soupDraft()
		draft.Instructions = []string{"Chop carrots", "Chop carrots"}

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.Instructions)

		fieldErrors.Instructions = ""
		require.True(t, fieldErrors.Empty())
	})

	t.Run("More than 30 ingredients fail", func(t *testing.T) {
		draft := soupDraft()
		for i := 0; i < 31; i++ {
			draft.IngredientGroups[0].Ingredients = append(draft.IngredientGroups[0].Ingredients,
				recipeModel.Ingredient{Name: random.String(8), Quantity: "1", Unit: "g"})
		}

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.Ingredients)
	})

	t.Run("More than 30 instructions fail", func(t *testing.T) {
		draft := soupDraft()
		draft.Instructions = nil
		for i := 0; i < 31; i++ {
			draft.Instructions = append(draft.Instructions, "Step "+random.String(6))
		}

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.Instructions)
	})

	t.Run("Zero instructions fail", func(t *testing.T) {
		draft := soupDraft()
		draft.Instructions = nil

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.Instructions)
	})

	t.Run("Instruction over 80 characters fails", func(t *testing.T) {
		draft := soupDraft()
		draft.Instructions = []string{strings.Repeat("x", 81), "Boil"}

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.InstructionItems[0])
		require.Empty(t, fieldErrors.InstructionItems[1])
	})

	t.Run("Food type without subtypes fails", func(t *testing.T) {
		draft := soupDraft()
		draft.FoodTypes = []recipeModel.FoodType{{MainType: "Fish & Seafood"}}

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.FoodType)
	})

	t.Run("Food type with valid subtype passes", func(t *testing.T) {
		draft := soupDraft()
		draft.FoodTypes = []recipeModel.FoodType{{MainType: "Fish & Seafood", SubTypes: []string{"Fish"}}}

		_, ok := recipeform.Validate(draft)
		require.True(t, ok)
	})

	t.Run("All violations are reported in one pass", func(t *testing.T) {
		draft := soupDraft()
		draft.Name = ""
		draft.PrepTime = "zero"
		draft.Instructions = []string{"Boil", "Boil"}

		fieldErrors, ok := recipeform.Validate(draft)
		require.False(t, ok)
		require.NotEmpty(t, fieldErrors.Name)
		require.NotEmpty(t, fieldErrors.PrepTime)
		require.NotEmpty(t, fieldErrors.Instructions)
	})

	t.Run("Validation is idempotent", func(t *testing.T) {
		draft := soupDraft()
		draft.Name = ""
		draft.CookTime = "abc"

		first, firstOK := recipeform.Validate(draft)
		second, secondOK := recipeform.Validate(draft)
		require.Equal(t, first, second)
		require.Equal(t, firstOK, secondOK)
	})
}
