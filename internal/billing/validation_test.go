package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sandeep0076/budget-sage/internal/apperror"
	"github.com/Sandeep0076/budget-sage/internal/models"
)

func validBill() models.Bill {
	return models.Bill{
		ID:      "bill-1",
		Name:    "Electricity",
		Amount:  models.NewMoneyFromFloat(85.20, "EUR"),
		DueDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:  models.BillStatusPending,
	}
}

func TestValidateBill(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(*models.Bill)
		expectedField string
	}{
		{"valid bill", func(b *models.Bill) {}, ""},
		{"empty name", func(b *models.Bill) { b.Name = "" }, "name"},
		{"whitespace name", func(b *models.Bill) { b.Name = "   " }, "name"},
		{"zero amount", func(b *models.Bill) { b.Amount = models.ZeroMoney("EUR") }, "amount"},
		{"negative amount", func(b *models.Bill) { b.Amount = models.NewMoneyFromFloat(-5, "EUR") }, "amount"},
		{"zero due date", func(b *models.Bill) { b.DueDate = time.Time{} }, "due_date"},
		{"recurring without frequency", func(b *models.Bill) { b.Recurring = true }, "frequency"},
		{"recurring with unknown frequency", func(b *models.Bill) {
			b.Recurring = true
			b.Frequency = models.Frequency("fortnightly")
		}, "frequency"},
		{"recurring with valid frequency", func(b *models.Bill) {
			b.Recurring = true
			b.Frequency = models.FrequencyWeekly
		}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bill := validBill()
			tc.modify(&bill)

			err := ValidateBill(&bill)
			if tc.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *apperror.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.expectedField, verr.Field)
		})
	}
}

func TestValidateBillTrimsName(t *testing.T) {
	bill := validBill()
	bill.Name = "  Electricity  "

	assert.NoError(t, ValidateBill(&bill))
	assert.Equal(t, "Electricity", bill.Name)
}

// A frequency left over on a non-recurring bill is cleared, not rejected.
func TestValidateBillClearsFrequencyWhenNotRecurring(t *testing.T) {
	bill := validBill()
	bill.Recurring = false
	bill.Frequency = models.FrequencyMonthly

	assert.NoError(t, ValidateBill(&bill))
	assert.Equal(t, models.Frequency(""), bill.Frequency)
}
