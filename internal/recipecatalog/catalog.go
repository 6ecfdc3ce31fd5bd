// Package recipecatalog holds the static option tables the recipe forms
// are built from: meal types, dish types, measurement units, the two-level
// food-type classification and the dietary-preference compatibility table.
package recipecatalog

import (
	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
)

var MealTypes = []string{
	"Dessert",
	"Main Course",
	"Appetizer",
	"Breakfast",
	"Side Dish",
}

var DishTypes = []string{
	"Pizza", "Pasta", "Beverage", "Salad", "Soup", "Snack",
	"Bread", "Pie", "Bake", "Cake", "Pastry", "Other",
}

var Units = []string{
	"g", "kg", "oz", "lb", "dl", "ml", "l",
	"tbsp", "tsp", "cup", "piece", "clove", "pinch", "gallon",
}

// FoodSubTypes maps each food main type to the subtypes selectable under it.
var FoodSubTypes = map[string][]string{
	"Red Meat & Ground Meat": {"Red Meat", "Ground Meat"},
	"Fish & Seafood":         {"Fish", "Seafood"},
	"Dairy & Eggs":           {"Dairy", "Eggs"},
	"Chicken & Poultry":      {"Chicken", "Poultry"},
	"Fruits & Berries":       {"Fruit", "Berries"},
	"Marinades & Sauces":     {"Marinade", "Sauce"},
	"Grains & Rice":          {"Grain", "Rice"},
	"Sausages":               {"Sausage"},
	"Beverages":              {"Beverage"},
}

var DietaryPreferences = []string{
	"Vegan", "Vegetarian", "Gluten-free", "Dairy-free", "Paleo",
	"Keto", "Low-carb", "Low-fat", "Low-sodium", "Sugar-free",
}

// Conflict names a food-type selection a dietary preference cannot coexist
// with. An empty SubType matches any subtype of the main type.
type Conflict struct {
	MainType string
	SubType  string
}

// dietaryConflicts is the static incompatibility table. Preferences not
// listed here are compatible with every food type.
var dietaryConflicts = map[string][]Conflict{
	"Vegan": {
		{MainType: "Red Meat & Ground Meat"},
		{MainType: "Fish & Seafood"},
		{MainType: "Chicken & Poultry"},
		{MainType: "Dairy & Eggs"},
		{MainType: "Sausages"},
	},
	"Vegetarian": {
		{MainType: "Red Meat & Ground Meat"},
		{MainType: "Fish & Seafood"},
		{MainType: "Chicken & Poultry"},
		{MainType: "Sausages"},
	},
	"Dairy-free": {
		{MainType: "Dairy & Eggs", SubType: "Dairy"},
	},
	"Gluten-free": {
		{MainType: "Grains & Rice", SubType: "Grain"},
	},
	"Paleo": {
		{MainType: "Grains & Rice"},
		{MainType: "Dairy & Eggs", SubType: "Dairy"},
	},
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func ValidMealType(mealType string) bool {
	return contains(MealTypes, mealType)
}

func ValidDishType(dishType string) bool {
	return contains(DishTypes, dishType)
}

func ValidUnit(unit string) bool {
	return contains(Units, unit)
}

func ValidDietaryPreference(preference string) bool {
	return contains(DietaryPreferences, preference)
}

// ValidFoodType reports whether mainType is a known main type and, when
// subType is non-empty, whether subType belongs to it.
func ValidFoodType(mainType, subType string) bool {
	subTypes, ok := FoodSubTypes[mainType]
	if !ok {
		return false
	}
	return subType == "" || contains(subTypes, subType)
}

// ConflictingFoodType returns the first selected food type the given
// dietary preference is incompatible with, per the static table.
func ConflictingFoodType(preference string, selected []recipeModel.FoodType) (recipeModel.FoodType, bool) {
	conflicts, ok := dietaryConflicts[preference]
	if !ok {
		return recipeModel.FoodType{}, false
	}
	for _, foodType := range selected {
		for _, conflict := range conflicts {
			if conflict.MainType != foodType.MainType {
				continue
			}
			if conflict.SubType == "" || contains(foodType.SubTypes, conflict.SubType) {
				return foodType, true
			}
		}
	}
	return recipeModel.FoodType{}, false
}

// ConflictingPreference is the reverse lookup: the first already selected
// dietary preference that rules out choosing the given food type.
func ConflictingPreference(foodType recipeModel.FoodType, preferences []string) (string, bool) {
	for _, preference := range preferences {
		if _, ok := ConflictingFoodType(preference, []recipeModel.FoodType{foodType}); ok {
			return preference, true
		}
	}
	return "", false
}
