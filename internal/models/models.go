// Package models defines the core data entities of the application: bills,
// transactions, categories and budgets, together with their enumerations.
package models

import (
	"time"
)

// BillStatus is the stored lifecycle state of a bill.
type BillStatus string

// Frequency is the recurrence frequency of a recurring bill.
type Frequency string

// TransactionType distinguishes money leaving from money entering.
type TransactionType string

// ValidFrequencies lists every frequency accepted by the schema.
var ValidFrequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyBiannually,
	FrequencyAnnually,
}

// IsValid reports whether f is one of the known frequencies.
func (f Frequency) IsValid() bool {
	for _, v := range ValidFrequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Bill represents a single payment obligation. A recurring bill spawns a
// successor with the next due date when it is marked paid.
type Bill struct {
	ID        string     `json:"id" yaml:"id"`
	OwnerID   string     `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	Name      string     `json:"name" yaml:"name"`
	Amount    Money      `json:"amount" yaml:"amount"`
	DueDate   time.Time  `json:"due_date" yaml:"due_date"`
	Status    BillStatus `json:"status" yaml:"status"`
	Recurring bool       `json:"recurring" yaml:"recurring"`
	// Frequency is set if and only if Recurring is true.
	Frequency  Frequency `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	CategoryID string    `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	Notes      string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"updated_at"`
}

// Transaction represents a ledger entry: money actually paid or received.
type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	OwnerID     string          `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	Description string          `json:"description" yaml:"description"`
	Amount      Money           `json:"amount" yaml:"amount"`
	Date        time.Time       `json:"date" yaml:"date"`
	Type        TransactionType `json:"type" yaml:"type"`
	CategoryID  string          `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	Note        string          `json:"note,omitempty" yaml:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at" yaml:"created_at"`
}

// Category groups transactions and bills for reporting. Bills and
// transactions hold category IDs as weak references; a dangling reference
// resolves to CategoryUncategorized at read time.
type Category struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty"`
	Income   bool     `json:"income" yaml:"income"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Budget is a per-category spending limit for one calendar month.
type Budget struct {
	ID         string    `json:"id" yaml:"id"`
	CategoryID string    `json:"category_id" yaml:"category_id"`
	// Month is the first day of the budgeted month.
	Month     time.Time `json:"month" yaml:"month"`
	Amount    Money     `json:"amount" yaml:"amount"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// ReceiptItem is a single line item extracted from a scanned receipt.
type ReceiptItem struct {
	Name     string `json:"name" yaml:"name"`
	Amount   Money  `json:"amount" yaml:"amount"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}
