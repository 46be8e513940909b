package categorizer

import (
	"context"

	"github.com/Sandeep0076/budget-sage/internal/models"
)

// Strategy defines one method of assigning a category to an item. Each
// implementation encapsulates a specific approach (keyword matching, AI).
type Strategy interface {
	// Categorize attempts to categorize an item using this strategy.
	// Returns the category, whether a category was found, and any error
	// encountered.
	Categorize(ctx context.Context, item Item) (models.Category, bool, error)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}
