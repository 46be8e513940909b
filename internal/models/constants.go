package models

// Bill statuses
const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	// BillStatusOverdue is a derived display status. It is never written to
	// storage; callers compute it from a pending bill's due date.
	BillStatusOverdue BillStatus = "overdue"
)

// Recurrence frequencies
const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyBiweekly   Frequency = "biweekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyBiannually Frequency = "biannually"
	FrequencyAnnually   Frequency = "annually"
)

// Transaction types
const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Categories
const (
	CategoryUncategorized = "Uncategorized"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionDataFile   = 0644
)
