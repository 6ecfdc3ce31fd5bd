package random

import (
	"math/rand"
	"strconv"
	"strings"

	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// String returns a random string of n characters
func String(n int) string {
	var sb strings.Builder
	k := len(alphabet)
	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}
	return sb.String()
}

// Email returns a random email
func Email() string {
	return String(10) + "@example.com"
}

// StringSlice creates a slice of length n containing random strings
func StringSlice(n int) []string {
	ss := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ss = append(ss, String(10))
	}
	return ss
}

// Draft builds a draft that passes every validation rule, for tests to
// break one field at a time.
func Draft() recipeModel.Draft {
	return recipeModel.Draft{
		Name:         String(8),
		Description:  String(20),
		FoodCategory: recipeModel.FoodCategory{MealType: "Main Course"},
		IngredientGroups: []recipeModel.IngredientGroup{
			{
				Ingredients: []recipeModel.Ingredient{
					{Name: String(6), Quantity: strconv.Itoa(rand.Intn(9) + 1), Unit: "g"},
					{Name: String(7), Quantity: "2.5", Unit: "dl"},
				},
			},
		},
		Instructions: []string{"Chop " + String(5), "Boil " + String(5)},
		PrepTime:     strconv.Itoa(rand.Intn(59) + 1),
		CookTime:     strconv.Itoa(rand.Intn(59) + 1),
	}
}
