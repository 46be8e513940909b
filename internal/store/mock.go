package store

import (
	"context"
	"time"

	"github.com/Sandeep0076/budget-sage/internal/apperror"
	"github.com/Sandeep0076/budget-sage/internal/models"
)

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	Bills        map[string]models.Bill
	Transactions []models.Transaction
	Categories   map[string]models.Category
	Budgets      []models.Budget

	// Error flags for testing error conditions
	CreateBillError        error
	GetBillError           error
	UpdateBillError        error
	DeleteBillError        error
	ListBillsError         error
	CreateTransactionError error
	ListTransactionsError  error
	CreateCategoryError    error
	GetCategoryError       error
	ListCategoriesError    error
	UpsertBudgetError      error
	ListBudgetsError       error
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		Bills:      make(map[string]models.Bill),
		Categories: make(map[string]models.Category),
	}
}

// CreateBill stores the bill in memory.
func (m *MockStore) CreateBill(ctx context.Context, bill models.Bill) (models.Bill, error) {
	if m.CreateBillError != nil {
		return models.Bill{}, m.CreateBillError
	}
	m.Bills[bill.ID] = bill
	return bill, nil
}

// GetBill returns the stored bill or a NotFoundError.
func (m *MockStore) GetBill(ctx context.Context, id string) (models.Bill, error) {
	if m.GetBillError != nil {
		return models.Bill{}, m.GetBillError
	}
	bill, ok := m.Bills[id]
	if !ok {
		return models.Bill{}, &apperror.NotFoundError{Collection: "bills", ID: id}
	}
	return bill, nil
}

// UpdateBill replaces the stored bill or returns a NotFoundError.
func (m *MockStore) UpdateBill(ctx context.Context, bill models.Bill) (models.Bill, error) {
	if m.UpdateBillError != nil {
		return models.Bill{}, m.UpdateBillError
	}
	if _, ok := m.Bills[bill.ID]; !ok {
		return models.Bill{}, &apperror.NotFoundError{Collection: "bills", ID: bill.ID}
	}
	m.Bills[bill.ID] = bill
	return bill, nil
}

// DeleteBill removes the stored bill or returns a NotFoundError.
func (m *MockStore) DeleteBill(ctx context.Context, id string) error {
	if m.DeleteBillError != nil {
		return m.DeleteBillError
	}
	if _, ok := m.Bills[id]; !ok {
		return &apperror.NotFoundError{Collection: "bills", ID: id}
	}
	delete(m.Bills, id)
	return nil
}

// ListBills returns all stored bills.
func (m *MockStore) ListBills(ctx context.Context) ([]models.Bill, error) {
	if m.ListBillsError != nil {
		return nil, m.ListBillsError
	}
	bills := make([]models.Bill, 0, len(m.Bills))
	for _, b := range m.Bills {
		bills = append(bills, b)
	}
	return bills, nil
}

// CreateTransaction appends the transaction in memory.
func (m *MockStore) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if m.CreateTransactionError != nil {
		return models.Transaction{}, m.CreateTransactionError
	}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// ListTransactions returns all stored transactions.
func (m *MockStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	if m.ListTransactionsError != nil {
		return nil, m.ListTransactionsError
	}
	return append([]models.Transaction{}, m.Transactions...), nil
}

// ListTransactionsBetween returns stored transactions with from <= date < to.
func (m *MockStore) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	if m.ListTransactionsError != nil {
		return nil, m.ListTransactionsError
	}
	var out []models.Transaction
	for _, tx := range m.Transactions {
		if !tx.Date.Before(from) && tx.Date.Before(to) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// CreateCategory stores the category in memory.
func (m *MockStore) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.CreateCategoryError != nil {
		return models.Category{}, m.CreateCategoryError
	}
	m.Categories[category.ID] = category
	return category, nil
}

// GetCategory returns the stored category or a NotFoundError.
func (m *MockStore) GetCategory(ctx context.Context, id string) (models.Category, error) {
	if m.GetCategoryError != nil {
		return models.Category{}, m.GetCategoryError
	}
	category, ok := m.Categories[id]
	if !ok {
		return models.Category{}, &apperror.NotFoundError{Collection: "categories", ID: id}
	}
	return category, nil
}

// ListCategories returns all stored categories.
func (m *MockStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	if m.ListCategoriesError != nil {
		return nil, m.ListCategoriesError
	}
	categories := make([]models.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, c)
	}
	return categories, nil
}

// UpsertBudget creates or replaces the budget for its category and month.
func (m *MockStore) UpsertBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	if m.UpsertBudgetError != nil {
		return models.Budget{}, m.UpsertBudgetError
	}
	for i, b := range m.Budgets {
		if b.CategoryID == budget.CategoryID && b.Month.Equal(budget.Month) {
			budget.ID = b.ID
			m.Budgets[i] = budget
			return budget, nil
		}
	}
	m.Budgets = append(m.Budgets, budget)
	return budget, nil
}

// ListBudgets returns all stored budgets.
func (m *MockStore) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	if m.ListBudgetsError != nil {
		return nil, m.ListBudgetsError
	}
	return append([]models.Budget{}, m.Budgets...), nil
}
