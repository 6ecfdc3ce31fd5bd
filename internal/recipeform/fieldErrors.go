package recipeform

import "strconv"

type (
	// IngredientErrors holds the per-field messages for one ingredient line.
	IngredientErrors struct {
		Name     string
		Quantity string
		Unit     string
	}

	// IngredientGroupErrors mirrors one ingredient group. Group carries
	// group-scoped messages such as duplicate ingredient names.
	IngredientGroupErrors struct {
		Group       string
		Ingredients []IngredientErrors
	}

	FoodCategoryErrors struct {
		MealType string
		Type     string
	}

	// FieldErrors mirrors the shape of a draft; every leaf is either empty
	// (no error) or a user-facing message. It is recomputed wholesale on
	// each validation pass and is never partially updated.
	FieldErrors struct {
		Name              string
		Description       string
		FoodCategory      FoodCategoryErrors
		Ingredients       string
		IngredientGroups  []IngredientGroupErrors
		Instructions      string
		InstructionItems  []string
		PrepTime          string
		CookTime          string
		ServingSize       string
		FoodType          string
		DietaryPreference string
	}
)

func (e IngredientErrors) empty() bool {
	return e.Name == "" && e.Quantity == "" && e.Unit == ""
}

func (e IngredientGroupErrors) empty() bool {
	if e.Group != "" {
		return false
	}
	for _, ingredient := range e.Ingredients {
		if !ingredient.empty() {
			return false
		}
	}
	return true
}

// Empty reports whether every leaf holds no error.
func (e FieldErrors) Empty() bool {
	if e.Name != "" || e.Description != "" ||
		e.FoodCategory.MealType != "" || e.FoodCategory.Type != "" ||
		e.Ingredients != "" || e.Instructions != "" ||
		e.PrepTime != "" || e.CookTime != "" || e.ServingSize != "" ||
		e.FoodType != "" || e.DietaryPreference != "" {
		return false
	}
	for _, group := range e.IngredientGroups {
		if !group.empty() {
			return false
		}
	}
	for _, item := range e.InstructionItems {
		if item != "" {
			return false
		}
	}
	return true
}

// Messages flattens every non-empty leaf into a list, for rendering.
func (e FieldErrors) Messages() []string {
	var messages []string
	add := func(field, message string) {
		if message != "" {
			messages = append(messages, field+": "+message)
		}
	}

	add("name", e.Name)
	add("description", e.Description)
	add("mealType", e.FoodCategory.MealType)
	add("type", e.FoodCategory.Type)
	add("prepTime", e.PrepTime)
	add("cookTime", e.CookTime)
	add("servingSize", e.ServingSize)
	add("ingredients", e.Ingredients)
	for i, group := range e.IngredientGroups {
		prefix := groupPrefix(i)
		add(prefix, group.Group)
		for j, ingredient := range group.Ingredients {
			add(prefix+ingredientPrefix(j)+".name", ingredient.Name)
			add(prefix+ingredientPrefix(j)+".quantity", ingredient.Quantity)
			add(prefix+ingredientPrefix(j)+".unit", ingredient.Unit)
		}
	}
	add("instructions", e.Instructions)
	for i, item := range e.InstructionItems {
		add(instructionPrefix(i), item)
	}
	add("foodType", e.FoodType)
	add("dietaryPreference", e.DietaryPreference)
	return messages
}

func groupPrefix(i int) string {
	return "ingredientGroups[" + strconv.Itoa(i) + "]"
}

func ingredientPrefix(i int) string {
	return ".ingredients[" + strconv.Itoa(i) + "]"
}

func instructionPrefix(i int) string {
	return "instructions[" + strconv.Itoa(i) + "]"
}
