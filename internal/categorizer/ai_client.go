package categorizer

import (
	"context"
)

// CategoryOption is one category offered to the AI model. The model is asked
// to answer with the stable ID, never a free-form name, so a creative
// rephrasing by the model cannot silently misclassify an item.
type CategoryOption struct {
	ID   string
	Name string
}

// AIClient defines the interface for AI-based categorization services.
// This abstraction allows the categorization logic to be tested without
// external API calls and keeps the AI provider swappable.
type AIClient interface {
	// SuggestCategory returns the ID of the option that best fits the item,
	// or an empty string if the model cannot decide.
	SuggestCategory(ctx context.Context, item Item, options []CategoryOption) (string, error)
}
