package recipe

import "errors"

var (
	// ErrInvalidRecipe indicates a recipe that does not decode or is inconsistent.
	ErrInvalidRecipe = errors.New("recipe: invalid recipe")
	// ErrUnknownPreset indicates a preset name with no embedded recipe.
	ErrUnknownPreset = errors.New("recipe: unknown preset")
)
