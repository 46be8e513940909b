package receipts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sandeep0076/budget-sage/internal/categorizer"
	"github.com/Sandeep0076/budget-sage/internal/ledger"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"
)

// cannedVision is a VisionClient returning a fixed response.
type cannedVision struct {
	response string
	err      error
}

func (c *cannedVision) ExtractText(ctx context.Context, imageFormat string, image []byte, prompt string) (string, error) {
	return c.response, c.err
}

func newTestScanner(s *store.MockStore, response string) *Scanner {
	logger := &logging.MockLogger{}
	cat := categorizer.New(s, []categorizer.Strategy{
		categorizer.NewKeywordStrategy(s, logger),
	}, logger)
	scanner := NewScanner(&cannedVision{response: response}, ledger.NewMaterializer(s, logger), cat, "EUR", logger)
	return scanner.WithClock(func() time.Time {
		return time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	})
}

func TestScanRecordsTransactions(t *testing.T) {
	s := store.NewMockStore()
	s.Categories["cat-groceries"] = models.Category{
		ID:       "cat-groceries",
		Name:     "Groceries",
		Keywords: []string{"milk", "bread"},
	}

	response := "```json\n" +
		`[{"name": "Milk", "amount": 1.95}, {"name": "Bread", "amount": 3.20}]` +
		"\n```"

	result, err := newTestScanner(s, response).Scan(context.Background(), "jpeg", []byte("img"))
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	require.Len(t, result.Transactions, 2)
	require.Len(t, s.Transactions, 2)

	first := s.Transactions[0]
	assert.Equal(t, "Milk", first.Description)
	assert.Equal(t, models.TransactionTypeExpense, first.Type)
	assert.Equal(t, "cat-groceries", first.CategoryID)
	assert.True(t, first.Amount.Equal(models.NewMoneyFromFloat(1.95, "EUR")))
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), first.Date)
}

func TestScanUsesModelCategoryHint(t *testing.T) {
	s := store.NewMockStore()
	s.Categories["cat-household"] = models.Category{ID: "cat-household", Name: "Household"}

	response := `[{"name": "Dish soap", "amount": 2.50, "category": "household"}]`

	result, err := newTestScanner(s, response).Scan(context.Background(), "jpeg", []byte("img"))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "cat-household", s.Transactions[0].CategoryID)
}

func TestScanModelFailure(t *testing.T) {
	s := store.NewMockStore()
	logger := &logging.MockLogger{}
	scanner := NewScanner(&cannedVision{err: errors.New("quota exceeded")},
		ledger.NewMaterializer(s, logger), nil, "EUR", logger)

	_, err := scanner.Scan(context.Background(), "jpeg", []byte("img"))
	assert.Error(t, err)
	assert.Empty(t, s.Transactions)
}

func TestScanUnusableOutput(t *testing.T) {
	s := store.NewMockStore()

	_, err := newTestScanner(s, "Sorry, this image is too blurry to read.").Scan(context.Background(), "jpeg", []byte("img"))
	assert.Error(t, err)
	assert.Empty(t, s.Transactions)
}

func TestParseItems(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expectedOk    bool
		expectedCount int
	}{
		{"plain array", `[{"name": "Milk", "amount": 1.95}]`, true, 1},
		{"fenced array", "```json\n[{\"name\": \"Milk\", \"amount\": 1.95}]\n```", true, 1},
		{"object with items", `{"items": [{"name": "Milk", "amount": 1.95}]}`, true, 1},
		{"single object", `{"name": "Milk", "amount": 1.95}`, true, 1},
		{"string amounts", `[{"name": "Milk", "amount": "1.95"}]`, true, 1},
		{"price key and item key", `[{"item": "Milk", "price": 1.95}]`, true, 1},
		{"skips nameless entries", `[{"amount": 1.95}, {"name": "Milk", "amount": 1.95}]`, true, 1},
		{"skips non-positive amounts", `[{"name": "Discount", "amount": -2}, {"name": "Milk", "amount": 1.95}]`, true, 1},
		{"all entries unusable", `[{"name": "Discount", "amount": -2}]`, false, 0},
		{"no JSON at all", `unable to read`, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := ParseItems(tc.raw, "EUR")
			if tc.expectedOk {
				require.NoError(t, err)
				assert.Len(t, items, tc.expectedCount)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseItemsAmountFormats(t *testing.T) {
	raw := `[
		{"name": "Number", "amount": 12.30},
		{"name": "String", "amount": "4.50"},
		{"name": "With currency prefix", "amount": "CHF 9.90"}
	]`

	items, err := ParseItems(raw, "CHF")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, items[0].Amount.Equal(models.NewMoneyFromFloat(12.30, "CHF")))
	assert.True(t, items[1].Amount.Equal(models.NewMoneyFromFloat(4.50, "CHF")))
	assert.True(t, items[2].Amount.Equal(models.NewMoneyFromFloat(9.90, "CHF")))
}
