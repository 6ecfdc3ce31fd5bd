package recipeform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
)

type (
	// State is the position of a form in its submission lifecycle.
	State int

	// Mode distinguishes the create and edit flows. They differ only in
	// the name-uniqueness server check: edit mode exempts the recipe's own
	// persisted name.
	Mode int

	// RecipeService is the slice of the API client the flow needs.
	RecipeService interface {
		RecipeNameExists(ctx context.Context, name string) (bool, error)
		CreateRecipe(ctx context.Context, req recipeModel.CreateRequest) (string, error)
		UpdateRecipe(ctx context.Context, id string, req recipeModel.UpdateRequest) (recipeModel.Recipe, error)
	}

	// Flow drives one form instance through
	// Editing -> Validating -> NameCheckInFlight -> Submitting, returning
	// to Editing on every failure with the draft intact. A second Submit
	// while one is in flight is rejected rather than queued.
	Flow struct {
		service      RecipeService
		mode         Mode
		recipeID     string
		originalName string

		mu    sync.Mutex
		state State
	}

	// ValidationError carries the full FieldErrors tree of a failed pass.
	ValidationError struct {
		Fields FieldErrors
	}
)

const (
	StateEditing State = iota
	StateValidating
	StateNameCheckInFlight
	StateSubmitting
	StateSucceeded
)

const (
	ModeCreate Mode = iota
	ModeEdit
)

var (
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrNameConflict       = errors.New("a recipe with this name already exists")
	ErrAlreadySubmitted   = errors.New("this form has already been submitted")
)

func (e *ValidationError) Error() string {
	messages := e.Fields.Messages()
	if len(messages) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", messages[0])
}

// NewCreateFlow creates a pointer to a Flow for the add-recipe form.
func NewCreateFlow(service RecipeService) *Flow {
	return &Flow{service: service, mode: ModeCreate}
}

// NewEditFlow creates a pointer to a Flow for the edit form of an existing
// recipe. originalName is the recipe's persisted name, exempt from the
// duplicate-name check.
func NewEditFlow(service RecipeService, recipeID, originalName string) *Flow {
	return &Flow{
		service:      service,
		mode:         ModeEdit,
		recipeID:     recipeID,
		originalName: originalName,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit runs the full submission sequence: validate, check the name
// against the server, then create or update. On success the draft is
// cleared and the new (or existing) recipe id returned; on any failure the
// flow returns to Editing with the draft untouched. A cancelled context
// abandons the in-flight call without recording its outcome.
func (f *Flow) Submit(ctx context.Context, draft *recipeModel.Draft, userID string) (string, error) {
	if err := f.transitionToValidating(); err != nil {
		return "", err
	}

	fieldErrors, ok := Validate(*draft)
	if !ok {
		f.setState(StateEditing)
		return "", &ValidationError{Fields: fieldErrors}
	}

	if f.needsNameCheck(draft.Name) {
		f.setState(StateNameCheckInFlight)
		exists, err := f.service.RecipeNameExists(ctx, draft.Name)
		if err != nil {
			f.setState(StateEditing)
			return "", fmt.Errorf("could not check recipe name: %w", err)
		}
		if exists {
			f.setState(StateEditing)
			return "", ErrNameConflict
		}
	}

	f.setState(StateSubmitting)
	id, err := f.persist(ctx, *draft, userID)
	if err != nil {
		f.setState(StateEditing)
		return "", err
	}

	*draft = recipeModel.Draft{}
	f.setState(StateSucceeded)
	return id, nil
}

func (f *Flow) persist(ctx context.Context, draft recipeModel.Draft, userID string) (string, error) {
	if f.mode == ModeEdit {
		recipe, err := f.service.UpdateRecipe(ctx, f.recipeID, recipeModel.UpdateRequest{Draft: draft, UserID: userID})
		if err != nil {
			return "", fmt.Errorf("could not update recipe: %w", err)
		}
		if recipe.ID != "" {
			return recipe.ID, nil
		}
		return f.recipeID, nil
	}

	id, err := f.service.CreateRecipe(ctx, recipeModel.CreateRequest{Draft: draft, UserID: userID})
	if err != nil {
		return "", fmt.Errorf("could not create recipe: %w", err)
	}
	return id, nil
}

func (f *Flow) needsNameCheck(name string) bool {
	return f.mode == ModeCreate || name != f.originalName
}

func (f *Flow) transitionToValidating() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateEditing:
		f.state = StateValidating
		return nil
	case StateSucceeded:
		return ErrAlreadySubmitted
	default:
		return ErrSubmissionInFlight
	}
}

func (f *Flow) setState(state State) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()
}
