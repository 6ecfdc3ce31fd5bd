// Package recipeform is the single recipe-form validation and submission
// model shared by the create and edit flows. Validate is a pure function
// from a draft to a full FieldErrors tree; Flow drives the submission
// sequence around it.
package recipeform

import (
	"regexp"
	"strconv"
	"strings"

	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	"github.com/remirami/RecipeBank/internal/recipecatalog"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 400
	maxInstructionLength = 80
	maxIngredients       = 30
	maxIngredientGroups  = 30
	maxInstructions      = 30
	maxServingSize       = 100
)

const (
	msgFieldRequired      = "This field cannot be empty."
	msgSelectMealType     = "Please select a meal type."
	msgInvalidMealType    = "Please select a valid meal type."
	msgInvalidDishType    = "Please select a valid type."
	msgPositiveInteger    = "This field requires a positive integer value."
	msgServingSizeInvalid = "Serving size must be a positive number and not exceed 100."
	msgNameTooLong        = "Name can be at most 50 characters."
	msgDescriptionTooLong = "Description can be at most 400 characters."
	msgInstructionTooLong = "Instructions can be at most 80 characters each."
	msgTooManyIngredients = "You can add up to 30 ingredients only."
	msgTooManyGroups      = "You can add up to 30 ingredient groups only."
	msgNoIngredients      = "There should be at least one ingredient per recipe."
	msgEmptyGroup         = "Each ingredient group needs at least one ingredient."
	msgTooManySteps       = "You can add up to 30 instructions only."
	msgNoInstructions     = "There should be at least one instruction per recipe."
	msgIngredientName     = "Ingredient name is required."
	msgIngredientQuantity = "Ingredient quantity is required."
	msgQuantityNotNumber  = "Ingredient quantity must be a non-negative number."
	msgUnknownUnit        = "Please select a valid unit."
	msgDuplicateNames     = "Ingredient names must be unique within a group."
	msgDuplicateSteps     = "Duplicate instructions are not allowed."
	msgInvalidFoodType    = "Please select a valid food type."
	msgUnknownPreference  = "Unknown dietary preference."
)

var (
	timeRegex     = regexp.MustCompile(`^[0-9]+$`)
	quantityRegex = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)
)

// Validate maps a draft to a FieldErrors tree and an overall verdict.
// Every rule is evaluated on every call so a single pass reports all
// violations at once; nothing is retained between calls.
func Validate(draft recipeModel.Draft) (FieldErrors, bool) {
	fieldErrors := FieldErrors{
		IngredientGroups: make([]IngredientGroupErrors, len(draft.IngredientGroups)),
		InstructionItems: make([]string, len(draft.Instructions)),
	}

	validateName(draft, &fieldErrors)
	validateTimes(draft, &fieldErrors)
	validateCardinality(draft, &fieldErrors)
	validateIngredients(draft, &fieldErrors)
	validateUniqueness(draft, &fieldErrors)
	validateFoodTypes(draft, &fieldErrors)

	return fieldErrors, fieldErrors.Empty()
}

func validateName(draft recipeModel.Draft, fieldErrors *FieldErrors) {
	switch {
	case strings.TrimSpace(draft.Name) == "":
		fieldErrors.Name = msgFieldRequired
	case len(draft.Name) > maxNameLength:
		fieldErrors.Name = msgNameTooLong
	}

	if len(draft.Description) > maxDescriptionLength {
		fieldErrors.Description = msgDescriptionTooLong
	}

	mealType := strings.TrimSpace(draft.FoodCategory.MealType)
	switch {
	case mealType == "":
		fieldErrors.FoodCategory.MealType = msgSelectMealType
	case !recipecatalog.ValidMealType(mealType):
		fieldErrors.FoodCategory.MealType = msgInvalidMealType
	}

	if draft.FoodCategory.Type != "" && !recipecatalog.ValidDishType(draft.FoodCategory.Type) {
		fieldErrors.FoodCategory.Type = msgInvalidDishType
	}
}

func validateTimes(draft recipeModel.Draft, fieldErrors *FieldErrors) {
	if !validTime(draft.PrepTime) {
		fieldErrors.PrepTime = msgPositiveInteger
	}
	if !validTime(draft.CookTime) {
		fieldErrors.CookTime = msgPositiveInteger
	}

	if draft.ServingSize != "" {
		size, err := strconv.Atoi(draft.ServingSize)
		if err != nil || size <= 0 || size > maxServingSize {
			fieldErrors.ServingSize = msgServingSizeInvalid
		}
	}
}

func validTime(value string) bool {
	if !timeRegex.MatchString(value) {
		return false
	}
	minutes, err := strconv.Atoi(value)
	return err == nil && minutes > 0
}

func validateCardinality(draft recipeModel.Draft, fieldErrors *FieldErrors) {
	switch {
	case len(draft.IngredientGroups) == 0:
		fieldErrors.Ingredients = msgNoIngredients
	case len(draft.IngredientGroups) > maxIngredientGroups:
		fieldErrors.Ingredients = msgTooManyGroups
	case draft.IngredientCount() > maxIngredients:
		fieldErrors.Ingredients = msgTooManyIngredients
	}

	for i, group := range draft.IngredientGroups {
		if len(group.Ingredients) == 0 {
			fieldErrors.IngredientGroups[i].Group = msgEmptyGroup
		}
	}

	switch {
	case len(draft.Instructions) == 0:
		fieldErrors.Instructions = msgNoInstructions
	case len(draft.Instructions) > maxInstructions:
		fieldErrors.Instructions = msgTooManySteps
	}

	for i, instruction := range draft.Instructions {
		switch {
		case strings.TrimSpace(instruction) == "":
			fieldErrors.InstructionItems[i] = msgFieldRequired
		case len(instruction) > maxInstructionLength:
			fieldErrors.InstructionItems[i] = msgInstructionTooLong
		}
	}
}

func validateIngredients(draft recipeModel.Draft, fieldErrors *FieldErrors) {
	for i, group := range draft.IngredientGroups {
		fieldErrors.IngredientGroups[i].Ingredients = make([]IngredientErrors, len(group.Ingredients))
		for j, ingredient := range group.Ingredients {
			ingredientErrors := &fieldErrors.IngredientGroups[i].Ingredients[j]

			if strings.TrimSpace(ingredient.Name) == "" {
				ingredientErrors.Name = msgIngredientName
			}

			quantity := strings.TrimSpace(ingredient.Quantity)
			switch {
			case quantity == "":
				ingredientErrors.Quantity = msgIngredientQuantity
			case !quantityRegex.MatchString(quantity):
				ingredientErrors.Quantity = msgQuantityNotNumber
			}

			if ingredient.Unit != "" && !recipecatalog.ValidUnit(ingredient.Unit) {
				ingredientErrors.Unit = msgUnknownUnit
			}
		}
	}
}

func validateUniqueness(draft recipeModel.Draft, fieldErrors *FieldErrors) {
	for i, group := range draft.IngredientGroups {
		seen := make(map[string]bool, len(group.Ingredients))
		for _, ingredient := range group.Ingredients {
			name := strings.ToLower(strings.TrimSpace(ingredient.Name))
			if name == "" {
				continue
			}
			if seen[name] {
				fieldErrors.IngredientGroups[i].Group = msgDuplicateNames
				break
			}
			seen[name] = true
		}
	}

	seen := make(map[string]bool, len(draft.Instructions))
	for _, instruction := range draft.Instructions {
		if seen[instruction] {
			fieldErrors.Instructions = msgDuplicateSteps
			break
		}
		seen[instruction] = true
	}
}

func validateFoodTypes(draft recipeModel.Draft, fieldErrors *FieldErrors) {
	for _, foodType := range draft.FoodTypes {
		if strings.TrimSpace(foodType.MainType) == "" || len(foodType.SubTypes) == 0 {
			fieldErrors.FoodType = msgInvalidFoodType
			return
		}
		for _, subType := range foodType.SubTypes {
			if !recipecatalog.ValidFoodType(foodType.MainType, subType) {
				fieldErrors.FoodType = msgInvalidFoodType
				return
			}
		}
	}

	for _, preference := range draft.DietaryPreference {
		if !recipecatalog.ValidDietaryPreference(preference) {
			fieldErrors.DietaryPreference = msgUnknownPreference
			return
		}
	}
}
