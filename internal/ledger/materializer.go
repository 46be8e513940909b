// Package ledger materializes transactions: it turns payment events and
// scanned receipt items into permanent ledger entries.
package ledger

import (
	"context"
	"time"

	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"

	"github.com/google/uuid"
)

// Entry describes the transaction to be created.
type Entry struct {
	Description string
	Amount      models.Money
	Date        time.Time
	Type        models.TransactionType
	CategoryID  string
	Note        string
}

// Materializer creates ledger entries through the persistence gateway.
type Materializer struct {
	transactions store.TransactionStore
	logger       logging.Logger
}

// NewMaterializer creates a Materializer writing through the given store.
func NewMaterializer(transactions store.TransactionStore, logger logging.Logger) *Materializer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Materializer{
		transactions: transactions,
		logger:       logger,
	}
}

// Materialize creates and persists the transaction described by entry.
func (m *Materializer) Materialize(ctx context.Context, entry Entry) (models.Transaction, error) {
	tx := models.Transaction{
		ID:          uuid.NewString(),
		Description: entry.Description,
		Amount:      entry.Amount,
		Date:        entry.Date,
		Type:        entry.Type,
		CategoryID:  entry.CategoryID,
		Note:        entry.Note,
		CreatedAt:   time.Now(),
	}

	created, err := m.transactions.CreateTransaction(ctx, tx)
	if err != nil {
		m.logger.WithError(err).WithFields(
			logging.Field{Key: logging.FieldOperation, Value: "materialize"},
			logging.Field{Key: "description", Value: entry.Description},
		).Error("Failed to create ledger entry")
		return models.Transaction{}, err
	}

	m.logger.WithFields(
		logging.Field{Key: logging.FieldTransactionID, Value: created.ID},
		logging.Field{Key: logging.FieldAmount, Value: created.Amount.String()},
	).Debug("Materialized transaction")

	return created, nil
}
