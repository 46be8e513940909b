package categorizer

import (
	"context"
	"strings"

	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"
)

// KeywordStrategy categorizes items by matching their name and description
// against the keywords configured on each category.
type KeywordStrategy struct {
	categories store.CategoryStore
	logger     logging.Logger
}

// NewKeywordStrategy creates a new KeywordStrategy instance.
func NewKeywordStrategy(categories store.CategoryStore, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStrategy{
		categories: categories,
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize attempts to categorize an item using keyword pattern matching.
func (s *KeywordStrategy) Categorize(ctx context.Context, item Item) (models.Category, bool, error) {
	if strings.TrimSpace(item.Name) == "" {
		return models.Category{}, false, nil
	}

	all, err := s.categories.ListCategories(ctx)
	if err != nil {
		return models.Category{}, false, err
	}

	// Case-insensitive matching
	name := strings.ToUpper(item.Name)
	info := strings.ToUpper(item.Info)

	for _, category := range all {
		for _, keyword := range category.Keywords {
			keywordUpper := strings.ToUpper(keyword)
			if strings.Contains(name, keywordUpper) || strings.Contains(info, keywordUpper) {
				s.logger.WithFields(
					logging.Field{Key: "strategy", Value: s.Name()},
					logging.Field{Key: "item", Value: item.Name},
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
				).Debug("Item categorized using keyword matching")
				return category, true, nil
			}
		}
	}

	return models.Category{}, false, nil
}
