package categorizer

import (
	"context"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Sandeep0076/budget-sage/internal/apperror"
	"github.com/Sandeep0076/budget-sage/internal/fileutils"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"
)

// MappingStrategy categorizes items by exact payee-name match against
// mappings learned in earlier runs. The mappings live in a YAML file as a
// map of lowercased payee name to category ID, so a payee the AI has
// categorized once never needs another model call.
type MappingStrategy struct {
	path       string
	mappings   map[string]string
	categories store.CategoryStore
	logger     logging.Logger
	mu         sync.RWMutex
	dirty      bool
}

// NewMappingStrategy creates a MappingStrategy backed by the YAML file at
// path. A missing file starts an empty mapping set; an unreadable one is
// logged and treated the same way.
func NewMappingStrategy(path string, categories store.CategoryStore, logger logging.Logger) *MappingStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	s := &MappingStrategy{
		path:       path,
		mappings:   make(map[string]string),
		categories: categories,
		logger:     logger,
	}
	s.load()
	return s
}

// Name returns the name of this strategy for logging and debugging.
func (s *MappingStrategy) Name() string {
	return "Mapping"
}

// Categorize attempts to categorize an item by exact payee-name lookup.
// A mapping pointing at a category that no longer exists is ignored.
func (s *MappingStrategy) Categorize(ctx context.Context, item Item) (models.Category, bool, error) {
	name := strings.ToLower(strings.TrimSpace(item.Name))
	if name == "" {
		return models.Category{}, false, nil
	}

	s.mu.RLock()
	categoryID, found := s.mappings[name]
	s.mu.RUnlock()
	if !found {
		return models.Category{}, false, nil
	}

	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return models.Category{}, false, nil
		}
		return models.Category{}, false, err
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: "item", Value: item.Name},
		logging.Field{Key: logging.FieldCategory, Value: category.Name},
	).Debug("Item categorized using learned payee mapping")
	return category, true, nil
}

// Learn records a payee-to-category mapping in memory. Call Save to
// persist.
func (s *MappingStrategy) Learn(payee, categoryID string) {
	name := strings.ToLower(strings.TrimSpace(payee))
	if name == "" || categoryID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mappings[name] == categoryID {
		return
	}
	s.mappings[name] = categoryID
	s.dirty = true
}

// Save writes the mappings back to the YAML file if any were learned since
// the last save.
func (s *MappingStrategy) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}

	data, err := yaml.Marshal(s.mappings)
	if err != nil {
		return &apperror.PersistenceError{Collection: "mappings", Op: "marshal", Err: err}
	}
	if err := fileutils.WriteFile(s.path, data, models.PermissionDataFile); err != nil {
		return &apperror.PersistenceError{Collection: "mappings", Op: "write", Err: err}
	}
	s.dirty = false
	s.logger.WithField("count", len(s.mappings)).Debug("Saved payee mappings")
	return nil
}

func (s *MappingStrategy) load() {
	if !fileutils.FileExists(s.path) {
		return
	}
	data, err := fileutils.ReadFile(s.path)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read payee mappings, starting empty")
		return
	}
	mappings := make(map[string]string)
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		s.logger.WithError(err).Warn("Failed to parse payee mappings, starting empty")
		return
	}
	s.mu.Lock()
	s.mappings = mappings
	s.mu.Unlock()
	s.logger.WithField("count", len(mappings)).Debug("Loaded payee mappings")
}
