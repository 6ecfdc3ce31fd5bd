package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	"github.com/remirami/RecipeBank/internal/recipeform"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fde68a"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#86efac"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Italic(true)
)

func renderRecipe(recipe recipeModel.Recipe) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(recipe.Name) + "\n")
	if recipe.Description != "" {
		sb.WriteString(recipe.Description + "\n")
	}

	sb.WriteString(labelStyle.Render("Meal type: ") + recipe.FoodCategory.MealType)
	if recipe.FoodCategory.Type != "" {
		sb.WriteString(" / " + recipe.FoodCategory.Type)
	}
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Prep: ") + recipe.PrepTime + " min  ")
	sb.WriteString(labelStyle.Render("Cook: ") + recipe.CookTime + " min\n")
	if recipe.ServingSize != "" {
		sb.WriteString(labelStyle.Render("Serves: ") + recipe.ServingSize + "\n")
	}
	if len(recipe.DietaryPreference) > 0 {
		sb.WriteString(labelStyle.Render("Dietary: ") + strings.Join(recipe.DietaryPreference, ", ") + "\n")
	}

	for _, group := range recipe.IngredientGroups {
		title := group.Title
		if title == "" {
			title = "Ingredients"
		}
		sb.WriteString("\n" + titleStyle.Render(title) + "\n")
		for _, ingredient := range group.Ingredients {
			line := "  - " + ingredient.Quantity
			if ingredient.Unit != "" {
				line += " " + ingredient.Unit
			}
			sb.WriteString(line + " " + ingredient.Name + "\n")
		}
	}

	if len(recipe.Instructions) > 0 {
		sb.WriteString("\n" + titleStyle.Render("Instructions") + "\n")
		for i, instruction := range recipe.Instructions {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, strings.TrimSpace(instruction)))
		}
	}

	sb.WriteString("\n" + labelStyle.Render("Likes: ") + strconv.Itoa(recipe.Likes) +
		"  " + labelStyle.Render("Dislikes: ") + strconv.Itoa(recipe.Dislikes) + "\n")
	return sb.String()
}

func renderFieldErrors(fieldErrors recipeform.FieldErrors) string {
	var sb strings.Builder
	sb.WriteString(errorStyle.Render("The draft has validation errors:") + "\n")
	for _, message := range fieldErrors.Messages() {
		sb.WriteString("  " + errorStyle.Render(message) + "\n")
	}
	return sb.String()
}
