// Package receipts implements the receipt scanning pipeline: an image is
// sent to a vision model, the response is parsed into line items with
// several fallback strategies, and the items are materialized as ledger
// transactions.
package receipts

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Sandeep0076/budget-sage/internal/categorizer"
	"github.com/Sandeep0076/budget-sage/internal/currencyutils"
	"github.com/Sandeep0076/budget-sage/internal/dateutils"
	"github.com/Sandeep0076/budget-sage/internal/fileutils"
	"github.com/Sandeep0076/budget-sage/internal/ledger"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/textutils"
)

// extractionPrompt asks the model for machine-readable line items only.
const extractionPrompt = `Extract every purchased item from this receipt.
Respond with only a JSON array, no explanation, in this exact shape:
[{"name": "item name", "amount": 12.34, "category": "optional category hint"}]
Amounts are the line totals as plain numbers.`

// VisionClient is the slice of the model API the scanner needs.
type VisionClient interface {
	// ExtractText sends an image and prompt to the model and returns the
	// raw response text.
	ExtractText(ctx context.Context, imageFormat string, image []byte, prompt string) (string, error)
}

// Materializer is the slice of the ledger the scanner needs.
type Materializer interface {
	Materialize(ctx context.Context, entry ledger.Entry) (models.Transaction, error)
}

// Scanner drives the receipt extraction pipeline.
type Scanner struct {
	model       VisionClient
	ledger      Materializer
	categorizer *categorizer.Categorizer
	currency    string
	logger      logging.Logger
	now         func() time.Time
}

// ScanResult reports what a scan produced.
type ScanResult struct {
	Items        []models.ReceiptItem
	Transactions []models.Transaction
}

// NewScanner creates a Scanner. The categorizer may be nil, in which case
// items stay uncategorized.
func NewScanner(model VisionClient, materializer Materializer, cat *categorizer.Categorizer, currency string, logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Scanner{
		model:       model,
		ledger:      materializer,
		categorizer: cat,
		currency:    currency,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock overrides the scanner's notion of "today". Used by tests.
func (s *Scanner) WithClock(now func() time.Time) *Scanner {
	s.now = now
	return s
}

// ScanFile reads a receipt image from disk and runs the pipeline.
func (s *Scanner) ScanFile(ctx context.Context, imagePath string) (*ScanResult, error) {
	image, err := fileutils.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read receipt image: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(imagePath)), ".")
	if format == "jpg" {
		format = "jpeg"
	}
	if format != "jpeg" && format != "png" && format != "webp" {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return s.Scan(ctx, format, image)
}

// Scan sends the image to the model, parses the line items and materializes
// one expense transaction per item.
func (s *Scanner) Scan(ctx context.Context, imageFormat string, image []byte) (*ScanResult, error) {
	raw, err := s.model.ExtractText(ctx, imageFormat, image, extractionPrompt)
	if err != nil {
		return nil, fmt.Errorf("receipt extraction failed: %w", err)
	}

	items, err := ParseItems(raw, s.currency)
	if err != nil {
		return nil, err
	}

	s.logger.WithField(logging.FieldCount, len(items)).Info("Extracted receipt items")

	result := &ScanResult{Items: items}
	today := dateutils.Truncate(s.now())

	for _, item := range items {
		categoryID := s.resolveCategory(ctx, item)

		tx, err := s.ledger.Materialize(ctx, ledger.Entry{
			Description: item.Name,
			Amount:      item.Amount,
			Date:        today,
			Type:        models.TransactionTypeExpense,
			CategoryID:  categoryID,
			Note:        "Scanned from receipt",
		})
		if err != nil {
			return result, fmt.Errorf("failed to record item '%s': %w", item.Name, err)
		}
		result.Transactions = append(result.Transactions, tx)
	}

	return result, nil
}

// resolveCategory maps an item to a stored category ID, preferring the
// model's own hint when it matches a configured category by name.
func (s *Scanner) resolveCategory(ctx context.Context, item models.ReceiptItem) string {
	if s.categorizer == nil {
		return ""
	}

	if item.Category != "" {
		if category, ok := s.categorizer.MatchByName(ctx, item.Category); ok {
			return category.ID
		}
	}

	category, ok := s.categorizer.Categorize(ctx, categorizer.Item{
		Name:   item.Name,
		Amount: item.Amount.String(),
	})
	if !ok {
		return ""
	}
	return category.ID
}

// rawItem tolerates the shapes models actually produce: amounts as numbers
// or strings, alternate key names for the item label.
type rawItem struct {
	Name     string          `json:"name"`
	Item     string          `json:"item"`
	Amount   json.RawMessage `json:"amount"`
	Price    json.RawMessage `json:"price"`
	Category string          `json:"category"`
}

// ParseItems parses model output into receipt items, applying the fallback
// chain: strip markdown fences, locate the JSON payload, normalize
// array-vs-object shapes, then decode each element leniently.
func ParseItems(raw, currency string) ([]models.ReceiptItem, error) {
	payload, err := textutils.ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("no parseable items in model output: %w", err)
	}

	elements, err := textutils.NormalizeToArray(payload)
	if err != nil {
		return nil, fmt.Errorf("unexpected model output shape: %w", err)
	}

	var items []models.ReceiptItem
	for _, element := range elements {
		var ri rawItem
		if err := json.Unmarshal(element, &ri); err != nil {
			continue
		}

		name := ri.Name
		if name == "" {
			name = ri.Item
		}
		if strings.TrimSpace(name) == "" {
			continue
		}

		amountRaw := ri.Amount
		if len(amountRaw) == 0 {
			amountRaw = ri.Price
		}
		amount, err := decodeAmount(amountRaw, currency)
		if err != nil || !amount.IsPositive() {
			continue
		}

		items = append(items, models.ReceiptItem{
			Name:     strings.TrimSpace(name),
			Amount:   amount,
			Category: strings.TrimSpace(ri.Category),
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("model output contained no usable items")
	}
	return items, nil
}

// decodeAmount accepts a JSON number or a string like "12.34" or "CHF 12.34".
func decodeAmount(raw json.RawMessage, currency string) (models.Money, error) {
	if len(raw) == 0 {
		return models.Money{}, fmt.Errorf("missing amount")
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		// Re-parse through the string form to avoid float artifacts.
		return models.NewMoneyFromString(strconv.FormatFloat(num, 'f', -1, 64), currency)
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		dec, err := currencyutils.ParseAmount(str)
		if err != nil {
			return models.Money{}, err
		}
		return models.NewMoney(dec, currency), nil
	}

	return models.Money{}, fmt.Errorf("unparseable amount: %s", string(raw))
}
