// Package billing implements the bill lifecycle: validation, the derived
// overdue state, and the mark-paid sequence that settles a bill, records the
// payment in the ledger and schedules the next occurrence of a recurring
// bill.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/Sandeep0076/budget-sage/internal/apperror"
	"github.com/Sandeep0076/budget-sage/internal/dateutils"
	"github.com/Sandeep0076/budget-sage/internal/ledger"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"

	"github.com/google/uuid"
)

// Warning marks a best-effort step of MarkPaid that failed after the bill
// itself was already settled. Callers must surface each distinctly: the
// remediation differs (manually record the transaction vs. manually schedule
// the next bill).
type Warning string

const (
	// WarningTransactionNotRecorded means the bill is paid but no ledger
	// entry was created.
	WarningTransactionNotRecorded Warning = "transaction_not_recorded"
	// WarningNextBillNotScheduled means the bill is paid but the successor
	// bill for the next occurrence was not created.
	WarningNextBillNotScheduled Warning = "next_bill_not_scheduled"
)

// Materializer is the slice of the ledger the engine needs.
type Materializer interface {
	Materialize(ctx context.Context, entry ledger.Entry) (models.Transaction, error)
}

// PayResult is the outcome of MarkPaid. Warnings is empty on full success;
// a non-empty Warnings still means the bill was settled.
type PayResult struct {
	Bill        models.Bill
	Transaction *models.Transaction
	NextBill    *models.Bill
	Warnings    []Warning
}

// HasWarning reports whether w occurred.
func (r *PayResult) HasWarning(w Warning) bool {
	for _, got := range r.Warnings {
		if got == w {
			return true
		}
	}
	return false
}

// Engine drives bill status transitions. It assumes a single interactive
// caller per bill: two concurrent MarkPaid calls on the same bill can each
// settle it and produce duplicate side effects, as there is no locking or
// idempotency token in the storage layer.
type Engine struct {
	bills  store.BillStore
	ledger Materializer
	logger logging.Logger
	now    func() time.Time
}

// NewEngine creates an Engine over the given bill store and materializer.
func NewEngine(bills store.BillStore, materializer Materializer, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		bills:  bills,
		ledger: materializer,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the engine's notion of "today". Used by tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// MarkPaid settles the bill with the given ID.
//
// The sequence is fixed and not transactional:
//  1. fetch the bill (NotFoundError aborts before any mutation),
//  2. update its status to paid — the operation of record; a failure here is
//     a hard failure and nothing else proceeds,
//  3. best-effort: materialize the payment transaction,
//  4. best-effort: for a recurring bill, create the successor bill due at
//     the next occurrence of the due date captured in step 1.
//
// Failures in steps 3 and 4 are reported as warnings on an otherwise
// successful result; the settled bill is never rolled back.
func (e *Engine) MarkPaid(ctx context.Context, billID string) (*PayResult, error) {
	bill, err := e.bills.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	if bill.Status == models.BillStatusPaid {
		return nil, &apperror.ValidationError{
			Field:  "status",
			Value:  string(bill.Status),
			Reason: "bill is already paid",
		}
	}

	// The successor's due date must derive from the due date as it was
	// before the status update, never from a re-read record.
	originalDue := bill.DueDate

	paid := bill
	paid.Status = models.BillStatusPaid
	updated, err := e.bills.UpdateBill(ctx, paid)
	if err != nil {
		e.logger.WithError(err).WithFields(
			logging.Field{Key: logging.FieldBillID, Value: billID},
		).Error("Failed to mark bill paid")
		return nil, err
	}

	result := &PayResult{Bill: updated}

	tx, err := e.ledger.Materialize(ctx, ledger.Entry{
		Description: fmt.Sprintf("Bill payment: %s", bill.Name),
		Amount:      bill.Amount,
		Date:        dateutils.Truncate(e.now()),
		Type:        models.TransactionTypeExpense,
		CategoryID:  bill.CategoryID,
		Note:        fmt.Sprintf("Paid bill %s (%s)", bill.Name, bill.ID),
	})
	if err != nil {
		e.logger.WithError(err).WithFields(
			logging.Field{Key: logging.FieldBillID, Value: billID},
		).Warn("Bill settled but payment transaction was not recorded")
		result.Warnings = append(result.Warnings, WarningTransactionNotRecorded)
	} else {
		result.Transaction = &tx
	}

	if bill.Recurring {
		next, err := e.scheduleNext(ctx, bill, originalDue)
		if err != nil {
			e.logger.WithError(err).WithFields(
				logging.Field{Key: logging.FieldBillID, Value: billID},
				logging.Field{Key: logging.FieldFrequency, Value: string(bill.Frequency)},
			).Warn("Bill settled but next occurrence was not scheduled")
			result.Warnings = append(result.Warnings, WarningNextBillNotScheduled)
		} else {
			result.NextBill = &next
		}
	}

	return result, nil
}

// scheduleNext creates the successor bill for the next occurrence.
func (e *Engine) scheduleNext(ctx context.Context, bill models.Bill, originalDue time.Time) (models.Bill, error) {
	now := e.now()
	successor := models.Bill{
		ID:         uuid.NewString(),
		OwnerID:    bill.OwnerID,
		Name:       bill.Name,
		Amount:     bill.Amount,
		DueDate:    dateutils.NextDueDate(originalDue, bill.Frequency),
		Status:     models.BillStatusPending,
		Recurring:  true,
		Frequency:  bill.Frequency,
		CategoryID: bill.CategoryID,
		Notes:      bill.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return e.bills.CreateBill(ctx, successor)
}

// EffectiveStatus returns the display status of a bill at the given time:
// a pending bill whose due date has passed reads as overdue. The overdue
// state is never written to storage.
func EffectiveStatus(bill models.Bill, now time.Time) models.BillStatus {
	if bill.Status == models.BillStatusPending && dateutils.CompareDates(bill.DueDate, now) < 0 {
		return models.BillStatusOverdue
	}
	return bill.Status
}
