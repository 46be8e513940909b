package categorizer

import (
	"context"

	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"
)

const aiStrategyName = "AI"

// AIStrategy implements categorization through the AIClient interface.
type AIStrategy struct {
	aiClient   AIClient
	categories store.CategoryStore
	logger     logging.Logger
}

// NewAIStrategy creates a new AIStrategy instance.
func NewAIStrategy(aiClient AIClient, categories store.CategoryStore, logger logging.Logger) *AIStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &AIStrategy{
		aiClient:   aiClient,
		categories: categories,
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return aiStrategyName
}

// Categorize attempts to categorize an item using the AI client. A nil or
// failing client is not an error for the chain: the strategy reports
// "no match" and lets the caller fall through.
func (s *AIStrategy) Categorize(ctx context.Context, item Item) (models.Category, bool, error) {
	if s.aiClient == nil {
		s.logger.WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: "item", Value: item.Name},
		).Debug("AI client not available, skipping AI categorization")
		return models.Category{}, false, nil
	}

	all, err := s.categories.ListCategories(ctx)
	if err != nil {
		return models.Category{}, false, err
	}
	if len(all) == 0 {
		return models.Category{}, false, nil
	}

	options := make([]CategoryOption, 0, len(all))
	byID := make(map[string]models.Category, len(all))
	for _, category := range all {
		options = append(options, CategoryOption{ID: category.ID, Name: category.Name})
		byID[category.ID] = category
	}

	chosenID, err := s.aiClient.SuggestCategory(ctx, item, options)
	if err != nil {
		s.logger.WithError(err).WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: "item", Value: item.Name},
		).Warn("AI categorization failed")
		return models.Category{}, false, nil
	}

	category, ok := byID[chosenID]
	if !ok {
		return models.Category{}, false, nil
	}

	return category, true, nil
}
