package billing

import (
	"strings"

	"github.com/Sandeep0076/budget-sage/internal/apperror"
	"github.com/Sandeep0076/budget-sage/internal/models"
)

// ValidateBill checks proposed bill fields and normalizes them for storage.
// It rejects an empty name, a non-positive amount, a missing due date, and a
// recurring bill without a valid frequency. A frequency on a non-recurring
// bill is not an error: it is cleared, so a stale value cannot leak into a
// later recurring toggle.
//
// Category references are deliberately not checked for existence here; a
// dangling reference resolves to the uncategorized fallback at read time.
func ValidateBill(bill *models.Bill) error {
	bill.Name = strings.TrimSpace(bill.Name)
	if bill.Name == "" {
		return &apperror.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if !bill.Amount.IsPositive() {
		return &apperror.ValidationError{
			Field:  "amount",
			Value:  bill.Amount.String(),
			Reason: "must be a positive number",
		}
	}

	if bill.DueDate.IsZero() {
		return &apperror.ValidationError{Field: "due_date", Reason: "must be a valid calendar date"}
	}

	if bill.Recurring {
		if bill.Frequency == "" {
			return &apperror.ValidationError{Field: "frequency", Reason: "required for a recurring bill"}
		}
		if !bill.Frequency.IsValid() {
			return &apperror.ValidationError{
				Field:  "frequency",
				Value:  string(bill.Frequency),
				Reason: "unknown frequency",
			}
		}
	} else {
		bill.Frequency = ""
	}

	return nil
}
