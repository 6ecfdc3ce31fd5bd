package recipeform

import (
	"errors"
	"fmt"
	"strings"

	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	"github.com/remirami/RecipeBank/internal/recipecatalog"
)

// Editing helpers enforce the interactive rules the forms apply while the
// user types: conflicting checkbox states are rejected before they enter
// the draft, so the validation pass never sees them.

var (
	ErrIncompatiblePreference = errors.New("dietary preference conflicts with a selected food type")
	ErrIncompatibleFoodType   = errors.New("food type conflicts with a selected dietary preference")
	ErrUnknownPreference      = errors.New("unknown dietary preference")
	ErrUnknownFoodType        = errors.New("unknown food type")
	ErrQuantityNotNumber      = errors.New("quantity must be a non-negative number")
	ErrGroupLimit             = errors.New("you can add up to 30 ingredient groups only")
	ErrLastGroup              = errors.New("at least one ingredient group is required")
	ErrInstructionLimit       = errors.New("you can add up to 30 instructions only")
	ErrLastInstruction        = errors.New("at least one instruction is required")
	ErrIndexOutOfRange        = errors.New("index out of range")
)

// VerifyCompatibility checks a draft assembled outside the editing
// helpers, such as one decoded from a file, against the incompatibility
// table. Drafts built through the helpers can never trip it.
func VerifyCompatibility(draft recipeModel.Draft) error {
	for _, preference := range draft.DietaryPreference {
		if foodType, conflict := recipecatalog.ConflictingFoodType(preference, draft.FoodTypes); conflict {
			return fmt.Errorf("%w: %s vs %s", ErrIncompatiblePreference, preference, foodType.MainType)
		}
	}
	return nil
}

// ToggleDietaryPreference adds the preference when absent and removes it
// when present. Adding a preference that the incompatibility table rules
// out against a selected food type is rejected with no change to the draft.
func ToggleDietaryPreference(draft *recipeModel.Draft, preference string) error {
	if !recipecatalog.ValidDietaryPreference(preference) {
		return ErrUnknownPreference
	}

	for i, selected := range draft.DietaryPreference {
		if selected == preference {
			draft.DietaryPreference = append(draft.DietaryPreference[:i], draft.DietaryPreference[i+1:]...)
			return nil
		}
	}

	if foodType, conflict := recipecatalog.ConflictingFoodType(preference, draft.FoodTypes); conflict {
		return fmt.Errorf("%w: %s vs %s", ErrIncompatiblePreference, preference, foodType.MainType)
	}

	draft.DietaryPreference = append(draft.DietaryPreference, preference)
	return nil
}

// SetFoodTypeMain sets the main type of the food-type entry at index,
// appending a new entry when index equals the current length. The subtype
// selection is reset because subtypes belong to their main type. A main
// type incompatible with a selected dietary preference is rejected.
func SetFoodTypeMain(draft *recipeModel.Draft, index int, mainType string) error {
	if !recipecatalog.ValidFoodType(mainType, "") {
		return ErrUnknownFoodType
	}
	if index < 0 || index > len(draft.FoodTypes) {
		return ErrIndexOutOfRange
	}

	candidate := recipeModel.FoodType{MainType: mainType}
	if preference, conflict := recipecatalog.ConflictingPreference(candidate, draft.DietaryPreference); conflict {
		return fmt.Errorf("%w: %s vs %s", ErrIncompatibleFoodType, mainType, preference)
	}

	if index == len(draft.FoodTypes) {
		draft.FoodTypes = append(draft.FoodTypes, candidate)
		return nil
	}
	draft.FoodTypes[index] = candidate
	return nil
}

// ToggleSubType checks or unchecks a subtype under the food-type entry at
// index. Checking a subtype that activates an incompatibility (e.g. the
// Dairy subtype against Dairy-free) is rejected.
func ToggleSubType(draft *recipeModel.Draft, index int, subType string) error {
	if index < 0 || index >= len(draft.FoodTypes) {
		return ErrIndexOutOfRange
	}
	entry := &draft.FoodTypes[index]
	if !recipecatalog.ValidFoodType(entry.MainType, subType) {
		return ErrUnknownFoodType
	}

	for i, selected := range entry.SubTypes {
		if selected == subType {
			entry.SubTypes = append(entry.SubTypes[:i], entry.SubTypes[i+1:]...)
			return nil
		}
	}

	candidate := recipeModel.FoodType{MainType: entry.MainType, SubTypes: append([]string{subType}, entry.SubTypes...)}
	if preference, conflict := recipecatalog.ConflictingPreference(candidate, draft.DietaryPreference); conflict {
		return fmt.Errorf("%w: %s vs %s", ErrIncompatibleFoodType, subType, preference)
	}

	entry.SubTypes = append(entry.SubTypes, subType)
	return nil
}

// SetQuantity applies the canonical quantity sanitization: the value is
// trimmed and must parse as a non-negative decimal before it replaces the
// stored string. An empty value clears the field.
func SetQuantity(draft *recipeModel.Draft, groupIndex, ingredientIndex int, value string) error {
	if groupIndex < 0 || groupIndex >= len(draft.IngredientGroups) {
		return ErrIndexOutOfRange
	}
	group := &draft.IngredientGroups[groupIndex]
	if ingredientIndex < 0 || ingredientIndex >= len(group.Ingredients) {
		return ErrIndexOutOfRange
	}

	value = strings.TrimSpace(value)
	if value != "" && !quantityRegex.MatchString(value) {
		return ErrQuantityNotNumber
	}
	group.Ingredients[ingredientIndex].Quantity = value
	return nil
}

// AddIngredientGroup appends an empty group with one blank ingredient line.
func AddIngredientGroup(draft *recipeModel.Draft) error {
	if len(draft.IngredientGroups) >= maxIngredientGroups {
		return ErrGroupLimit
	}
	draft.IngredientGroups = append(draft.IngredientGroups, recipeModel.IngredientGroup{
		Ingredients: []recipeModel.Ingredient{{}},
	})
	return nil
}

// RemoveIngredientGroup removes the group at index; the last group cannot
// be removed.
func RemoveIngredientGroup(draft *recipeModel.Draft, index int) error {
	if len(draft.IngredientGroups) == 1 {
		return ErrLastGroup
	}
	if index < 0 || index >= len(draft.IngredientGroups) {
		return ErrIndexOutOfRange
	}
	draft.IngredientGroups = append(draft.IngredientGroups[:index], draft.IngredientGroups[index+1:]...)
	return nil
}

// AddInstruction appends an instruction line.
func AddInstruction(draft *recipeModel.Draft, instruction string) error {
	if len(draft.Instructions) >= maxInstructions {
		return ErrInstructionLimit
	}
	draft.Instructions = append(draft.Instructions, instruction)
	return nil
}

// RemoveInstruction removes the instruction at index; the last instruction
// cannot be removed.
func RemoveInstruction(draft *recipeModel.Draft, index int) error {
	if len(draft.Instructions) == 1 {
		return ErrLastInstruction
	}
	if index < 0 || index >= len(draft.Instructions) {
		return ErrIndexOutOfRange
	}
	draft.Instructions = append(draft.Instructions[:index], draft.Instructions[index+1:]...)
	return nil
}
