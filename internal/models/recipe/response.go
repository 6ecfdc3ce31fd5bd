package recipeModel

import "time"

type (
	Recipe struct {
		ID                string            `json:"_id"`
		Name              string            `json:"name"`
		Description       string            `json:"description,omitempty"`
		FoodCategory      FoodCategory      `json:"foodCategory"`
		IngredientGroups  []IngredientGroup `json:"ingredientGroups"`
		Instructions      []string          `json:"instructions"`
		PrepTime          string            `json:"prepTime"`
		CookTime          string            `json:"cookTime"`
		ServingSize       string            `json:"servingSize,omitempty"`
		FoodTypes         []FoodType        `json:"foodType"`
		DietaryPreference []string          `json:"dietaryPreference"`
		UserID            string            `json:"user_id"`
		Likes             int               `json:"likes"`
		Dislikes          int               `json:"dislikes"`
		CreatedAt         time.Time         `json:"createdAt"`
		UpdatedAt         time.Time         `json:"updatedAt"`
	}

	CreateResponse struct {
		ID string `json:"_id"`
	}
)
