package recipeModel

type (
	// Ingredient is a single ingredient line inside a group. Quantity is
	// kept as the decimal string the user typed; it must parse as a
	// non-negative number but is transmitted unconverted.
	Ingredient struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
	}

	IngredientGroup struct {
		Title       string       `json:"title"`
		Ingredients []Ingredient `json:"ingredients"`
	}

	FoodCategory struct {
		MealType string `json:"mealType"`
		Type     string `json:"type,omitempty"`
	}

	// FoodType is one entry of the two-level food classification:
	// a main type from the catalog plus the selected subtypes under it.
	FoodType struct {
		MainType string   `json:"mainType"`
		SubTypes []string `json:"subType"`
	}

	// Draft is the in-progress recipe a user is authoring or editing.
	Draft struct {
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
	}

	CreateRequest struct {
		Draft
		UserID string `json:"user_id"`
	}

	UpdateRequest struct {
		Draft
		UserID string `json:"user_id"`
	}

	SearchRequest struct {
		SearchTerm        string
		Category          string
		ByLikes           bool
		FoodType          string
		SubType           string
		DietaryPreference string
		CookTime          string
	}
)

// NewDraft returns an empty draft in the state the add-recipe form opens
// with: one untitled ingredient group holding one blank ingredient line.
func NewDraft() Draft {
	return Draft{
		IngredientGroups: []IngredientGroup{
			{Ingredients: []Ingredient{{}}},
		},
	}
}

// IngredientCount is the total number of ingredient lines across all groups.
func (d Draft) IngredientCount() int {
	count := 0
	for _, group := range d.IngredientGroups {
		count += len(group.Ingredients)
	}
	return count
}
