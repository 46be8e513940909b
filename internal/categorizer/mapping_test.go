package categorizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sandeep0076/budget-sage/internal/fileutils"
	"github.com/Sandeep0076/budget-sage/internal/logging"
)

func mappingPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "mappings.yaml")
}

func TestMappingStrategyCategorize(t *testing.T) {
	s := storeWithCategories()
	strategy := NewMappingStrategy(mappingPath(t), s, &logging.MockLogger{})
	strategy.Learn("Denner Filiale 23", "cat-groceries")

	tests := []struct {
		name       string
		item       Item
		expectedOk bool
		expectedID string
	}{
		{"exact match", Item{Name: "Denner Filiale 23"}, true, "cat-groceries"},
		{"match is case-insensitive", Item{Name: "DENNER FILIALE 23"}, true, "cat-groceries"},
		{"whitespace trimmed", Item{Name: "  Denner Filiale 23  "}, true, "cat-groceries"},
		{"no partial match", Item{Name: "Denner"}, false, ""},
		{"unknown payee", Item{Name: "dentist"}, false, ""},
		{"empty name", Item{Name: "   "}, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			category, found, err := strategy.Categorize(context.Background(), tc.item)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedOk, found)
			if tc.expectedOk {
				assert.Equal(t, tc.expectedID, category.ID)
			}
		})
	}
}

func TestMappingStrategyIgnoresStaleMapping(t *testing.T) {
	s := storeWithCategories()
	strategy := NewMappingStrategy(mappingPath(t), s, &logging.MockLogger{})
	strategy.Learn("old shop", "cat-deleted")

	_, found, err := strategy.Categorize(context.Background(), Item{Name: "old shop"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMappingStrategyPersistsAcrossInstances(t *testing.T) {
	s := storeWithCategories()
	path := mappingPath(t)

	first := NewMappingStrategy(path, s, &logging.MockLogger{})
	first.Learn("Denner Filiale 23", "cat-groceries")
	require.NoError(t, first.Save())
	require.True(t, fileutils.FileExists(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	stored := make(map[string]string)
	require.NoError(t, yaml.Unmarshal(data, &stored))
	assert.Equal(t, "cat-groceries", stored["denner filiale 23"])

	second := NewMappingStrategy(path, s, &logging.MockLogger{})
	category, found, err := second.Categorize(context.Background(), Item{Name: "Denner Filiale 23"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "cat-groceries", category.ID)
}

func TestMappingStrategySaveWithoutChangesIsNoop(t *testing.T) {
	s := storeWithCategories()
	path := mappingPath(t)
	strategy := NewMappingStrategy(path, s, &logging.MockLogger{})

	require.NoError(t, strategy.Save())
	assert.False(t, fileutils.FileExists(path))
}

func TestCategorizerLearnsFromAIResults(t *testing.T) {
	s := storeWithCategories()
	logger := &logging.MockLogger{}
	path := mappingPath(t)
	ai := &mockAIClient{categoryID: "cat-transport"}

	mappings := NewMappingStrategy(path, s, logger)
	c := New(s, []Strategy{
		mappings,
		NewKeywordStrategy(s, logger),
		NewAIStrategy(ai, s, logger),
	}, logger)
	c.EnableLearning(mappings)

	// First pass reaches the AI strategy and learns the result.
	category, found := c.Categorize(context.Background(), Item{Name: "night train to Vienna"})
	require.True(t, found)
	assert.Equal(t, "cat-transport", category.ID)
	assert.Equal(t, 1, ai.calls)
	assert.True(t, fileutils.FileExists(path))

	// Second pass resolves from the mapping without another model call.
	category, found = c.Categorize(context.Background(), Item{Name: "night train to Vienna"})
	require.True(t, found)
	assert.Equal(t, "cat-transport", category.ID)
	assert.Equal(t, 1, ai.calls)
}

func TestCategorizerDoesNotLearnKeywordMatches(t *testing.T) {
	s := storeWithCategories()
	logger := &logging.MockLogger{}
	path := mappingPath(t)

	mappings := NewMappingStrategy(path, s, logger)
	c := New(s, []Strategy{
		mappings,
		NewKeywordStrategy(s, logger),
	}, logger)
	c.EnableLearning(mappings)

	_, found := c.Categorize(context.Background(), Item{Name: "Migros run"})
	require.True(t, found)
	assert.False(t, fileutils.FileExists(path))
}

func TestMappingStrategyToleratesCorruptFile(t *testing.T) {
	s := storeWithCategories()
	path := mappingPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0644))

	strategy := NewMappingStrategy(path, s, &logging.MockLogger{})
	_, found, err := strategy.Categorize(context.Background(), Item{Name: "anything"})
	require.NoError(t, err)
	assert.False(t, found)
}
