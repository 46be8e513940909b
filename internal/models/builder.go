package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillBuilder provides a fluent API for constructing bills
type BillBuilder struct {
	bill Bill
	err  error
}

// NewBillBuilder creates a new BillBuilder with default values
func NewBillBuilder() *BillBuilder {
	return &BillBuilder{
		bill: Bill{
			ID:     uuid.NewString(),
			Status: BillStatusPending,
			Amount: Money{Amount: decimal.Zero},
		},
	}
}

// WithID sets a specific identifier instead of the generated one
func (b *BillBuilder) WithID(id string) *BillBuilder {
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = errors.New("bill ID cannot be empty")
		return b
	}
	b.bill.ID = id
	return b
}

// WithOwner sets the owning user's identifier
func (b *BillBuilder) WithOwner(ownerID string) *BillBuilder {
	b.bill.OwnerID = ownerID
	return b
}

// WithName sets the bill name
func (b *BillBuilder) WithName(name string) *BillBuilder {
	b.bill.Name = name
	return b
}

// WithAmount sets the bill amount
func (b *BillBuilder) WithAmount(amount Money) *BillBuilder {
	b.bill.Amount = amount
	return b
}

// WithAmountString parses and sets the bill amount from a string
func (b *BillBuilder) WithAmountString(amount, currency string) *BillBuilder {
	if b.err != nil {
		return b
	}
	m, err := NewMoneyFromString(amount, currency)
	if err != nil {
		b.err = err
		return b
	}
	b.bill.Amount = m
	return b
}

// WithDueDate sets the due date
func (b *BillBuilder) WithDueDate(due time.Time) *BillBuilder {
	b.bill.DueDate = due
	return b
}

// WithRecurrence marks the bill recurring with the given frequency
func (b *BillBuilder) WithRecurrence(frequency Frequency) *BillBuilder {
	if b.err != nil {
		return b
	}
	if !frequency.IsValid() {
		b.err = fmt.Errorf("unknown frequency: %s", frequency)
		return b
	}
	b.bill.Recurring = true
	b.bill.Frequency = frequency
	return b
}

// WithCategory sets the category reference
func (b *BillBuilder) WithCategory(categoryID string) *BillBuilder {
	b.bill.CategoryID = categoryID
	return b
}

// WithNotes sets free-text notes
func (b *BillBuilder) WithNotes(notes string) *BillBuilder {
	b.bill.Notes = notes
	return b
}

// Build finalizes and returns the bill, or the first error encountered
func (b *BillBuilder) Build() (Bill, error) {
	if b.err != nil {
		return Bill{}, b.err
	}
	now := time.Now()
	b.bill.CreatedAt = now
	b.bill.UpdatedAt = now
	return b.bill, nil
}
