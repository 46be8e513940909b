// Package store provides the persistence gateway for application records.
// Records are kept in YAML files under a data directory; every mutation is
// written through to disk.
package store

import (
	"context"
	"time"

	"github.com/Sandeep0076/budget-sage/internal/models"
)

// Store is the persistence gateway consumed by the billing engine, the
// ledger and the CLI. Implementations scope all operations to a single
// owner's data set.
type Store interface {
	BillStore
	TransactionStore
	CategoryStore
	BudgetStore
}

// BillStore covers CRUD over bill records.
type BillStore interface {
	CreateBill(ctx context.Context, bill models.Bill) (models.Bill, error)
	GetBill(ctx context.Context, id string) (models.Bill, error)
	UpdateBill(ctx context.Context, bill models.Bill) (models.Bill, error)
	DeleteBill(ctx context.Context, id string) error
	ListBills(ctx context.Context) ([]models.Bill, error)
}

// TransactionStore covers ledger entries.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]models.Transaction, error)
}

// CategoryStore covers category lookup and maintenance.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// BudgetStore covers per-category monthly budgets.
type BudgetStore interface {
	UpsertBudget(ctx context.Context, budget models.Budget) (models.Budget, error)
	ListBudgets(ctx context.Context) ([]models.Budget, error)
}
