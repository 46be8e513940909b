// Package categorizer resolves category references and assigns categories to
// uncategorized items using a chain of strategies: learned payee mappings
// first, then keyword matching against category configuration, then an AI
// model as a fallback.
package categorizer

import (
	"context"
	"strings"

	"github.com/Sandeep0076/budget-sage/internal/apperror"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"
)

// Item is the input to categorization: a receipt line item or transaction
// description together with its amount.
type Item struct {
	Name   string
	Amount string
	Date   string
	Info   string
}

// Categorizer resolves category IDs for display and categorizes items by
// running its strategies in order until one matches.
type Categorizer struct {
	categories store.CategoryStore
	strategies []Strategy
	mappings   *MappingStrategy
	logger     logging.Logger
}

// New creates a Categorizer over the given category store and strategies.
// Strategies run in the order supplied.
func New(categories store.CategoryStore, strategies []Strategy, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		categories: categories,
		strategies: strategies,
		logger:     logger,
	}
}

// EnableLearning makes AI categorization results feed back into the given
// mapping strategy, so repeat payees resolve without a model call. The
// strategy should also be first in the chain.
func (c *Categorizer) EnableLearning(mappings *MappingStrategy) {
	c.mappings = mappings
}

// ResolveName returns the display name for a category reference. A missing
// or dangling reference resolves to the uncategorized fallback rather than
// an error.
func (c *Categorizer) ResolveName(ctx context.Context, categoryID string) string {
	if categoryID == "" {
		return models.CategoryUncategorized
	}
	category, err := c.categories.GetCategory(ctx, categoryID)
	if err != nil {
		if !apperror.IsNotFound(err) {
			c.logger.WithError(err).WithField(logging.FieldCategory, categoryID).
				Warn("Category lookup failed, using fallback")
		}
		return models.CategoryUncategorized
	}
	return category.Name
}

// Categorize runs the strategy chain for the item and returns the first
// match. Strategy errors are logged and treated as "no match" so a failing
// AI backend never blocks categorization.
func (c *Categorizer) Categorize(ctx context.Context, item Item) (models.Category, bool) {
	if strings.TrimSpace(item.Name) == "" {
		return models.Category{}, false
	}

	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, item)
		if err != nil {
			c.logger.WithError(err).WithFields(
				logging.Field{Key: "strategy", Value: strategy.Name()},
				logging.Field{Key: "item", Value: item.Name},
			).Warn("Categorization strategy failed")
			continue
		}
		if found {
			c.logger.WithFields(
				logging.Field{Key: "strategy", Value: strategy.Name()},
				logging.Field{Key: "item", Value: item.Name},
				logging.Field{Key: logging.FieldCategory, Value: category.Name},
			).Debug("Item categorized")
			if c.mappings != nil && strategy.Name() == aiStrategyName {
				c.mappings.Learn(item.Name, category.ID)
				if err := c.mappings.Save(); err != nil {
					c.logger.WithError(err).Warn("Failed to save learned payee mapping")
				}
			}
			return category, true
		}
	}

	return models.Category{}, false
}

// MatchByName finds a stored category whose name equals name
// (case-insensitive). Used to map strategy results back to stable category
// identifiers.
func (c *Categorizer) MatchByName(ctx context.Context, name string) (models.Category, bool) {
	if name == "" {
		return models.Category{}, false
	}
	all, err := c.categories.ListCategories(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("Category listing failed")
		return models.Category{}, false
	}
	for _, category := range all {
		if strings.EqualFold(category.Name, name) {
			return category, true
		}
	}
	return models.Category{}, false
}
