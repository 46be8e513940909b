// Package report computes spending and bill summaries from stored data
// and renders them in machine-readable formats.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Sandeep0076/budget-sage/internal/billing"
	"github.com/Sandeep0076/budget-sage/internal/dateutils"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"
)

// CategoryTotal is one category row in a monthly summary.
type CategoryTotal struct {
	CategoryID   string        `json:"category_id" xml:"category-id"`
	CategoryName string        `json:"category_name" xml:"category-name"`
	Spent        models.Money  `json:"spent" xml:"spent"`
	Budget       *models.Money `json:"budget,omitempty" xml:"budget,omitempty"`
	Remaining    *models.Money `json:"remaining,omitempty" xml:"remaining,omitempty"`
	OverBudget   bool          `json:"over_budget" xml:"over-budget"`
}

// MonthlySummary aggregates one month of transactions against budgets.
type MonthlySummary struct {
	Month      string          `json:"month" xml:"month"`
	Income     models.Money    `json:"income" xml:"income"`
	Expenses   models.Money    `json:"expenses" xml:"expenses"`
	Categories []CategoryTotal `json:"categories" xml:"categories>category"`
}

// BillLine is one bill row in an outlook report.
type BillLine struct {
	ID      string            `json:"id" xml:"id"`
	Name    string            `json:"name" xml:"name"`
	Amount  models.Money      `json:"amount" xml:"amount"`
	DueDate string            `json:"due_date" xml:"due-date"`
	Status  models.BillStatus `json:"status" xml:"status"`
}

// BillsOutlook lists overdue bills and bills coming due soon. Overdue is
// derived from the due date at report time, never read from storage.
type BillsOutlook struct {
	AsOf     string       `json:"as_of" xml:"as-of"`
	Overdue  []BillLine   `json:"overdue" xml:"overdue>bill"`
	Upcoming []BillLine   `json:"upcoming" xml:"upcoming>bill"`
	Total    models.Money `json:"total_due" xml:"total-due"`
}

// Builder computes reports from a store.
type Builder struct {
	store    store.Store
	currency string
	logger   logging.Logger
	now      func() time.Time
}

// NewBuilder creates a report Builder. currency sets the zero value used
// when a period has no activity.
func NewBuilder(s store.Store, currency string, logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Builder{store: s, currency: currency, logger: logger, now: time.Now}
}

// WithClock overrides the builder's notion of "now". Used by tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Monthly builds the spending summary for the month containing the given
// date, including budget-vs-actual per category.
func (b *Builder) Monthly(ctx context.Context, month time.Time) (*MonthlySummary, error) {
	from := dateutils.StartOfMonth(month)
	to := from.AddDate(0, 1, 0)

	transactions, err := b.store.ListTransactionsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	categories, err := b.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	budgets, err := b.store.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	summary := &MonthlySummary{
		Month:    from.Format(dateutils.DateLayoutMonth),
		Income:   models.ZeroMoney(b.currency),
		Expenses: models.ZeroMoney(b.currency),
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	spent := make(map[string]models.Money)
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			if summary.Income, err = summary.Income.Add(tx.Amount); err != nil {
				return nil, err
			}
			continue
		}
		if summary.Expenses, err = summary.Expenses.Add(tx.Amount); err != nil {
			return nil, err
		}
		total, ok := spent[tx.CategoryID]
		if !ok {
			total = models.ZeroMoney(tx.Amount.Currency)
		}
		if total, err = total.Add(tx.Amount); err != nil {
			return nil, err
		}
		spent[tx.CategoryID] = total
	}

	budgeted := make(map[string]models.Money)
	for _, budget := range budgets {
		if dateutils.SameMonth(budget.Month, from) {
			budgeted[budget.CategoryID] = budget.Amount
		}
	}

	for categoryID, total := range spent {
		row := CategoryTotal{
			CategoryID:   categoryID,
			CategoryName: b.categoryName(names, categoryID),
			Spent:        total,
		}
		if limit, ok := budgeted[categoryID]; ok {
			remaining, err := limit.Sub(total)
			if err != nil {
				return nil, err
			}
			row.Budget = &limit
			row.Remaining = &remaining
			row.OverBudget = remaining.IsNegative()
		}
		summary.Categories = append(summary.Categories, row)
	}

	// Budgets with no spending still show up with the full amount left.
	for categoryID, limit := range budgeted {
		if _, ok := spent[categoryID]; ok {
			continue
		}
		remaining := limit
		summary.Categories = append(summary.Categories, CategoryTotal{
			CategoryID:   categoryID,
			CategoryName: b.categoryName(names, categoryID),
			Spent:        models.ZeroMoney(limit.Currency),
			Budget:       &limit,
			Remaining:    &remaining,
		})
	}

	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].CategoryName < summary.Categories[j].CategoryName
	})

	b.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: "month", Value: summary.Month},
	).Info("Built monthly summary")

	return summary, nil
}

// Outlook lists pending bills that are overdue or due within the horizon.
func (b *Builder) Outlook(ctx context.Context, horizon time.Duration) (*BillsOutlook, error) {
	bills, err := b.store.ListBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}

	now := b.now()
	cutoff := now.Add(horizon)
	outlook := &BillsOutlook{
		AsOf:  dateutils.ToISODate(now),
		Total: models.ZeroMoney(b.currency),
	}

	for _, bill := range bills {
		status := billing.EffectiveStatus(bill, now)
		if status == models.BillStatusPaid {
			continue
		}

		line := BillLine{
			ID:      bill.ID,
			Name:    bill.Name,
			Amount:  bill.Amount,
			DueDate: dateutils.ToISODate(bill.DueDate),
			Status:  status,
		}

		switch {
		case status == models.BillStatusOverdue:
			outlook.Overdue = append(outlook.Overdue, line)
		case !bill.DueDate.After(cutoff):
			outlook.Upcoming = append(outlook.Upcoming, line)
		default:
			continue
		}

		if outlook.Total, err = outlook.Total.Add(bill.Amount); err != nil {
			return nil, err
		}
	}

	sortByDueDate(outlook.Overdue)
	sortByDueDate(outlook.Upcoming)

	return outlook, nil
}

func (b *Builder) categoryName(names map[string]string, categoryID string) string {
	if name, ok := names[categoryID]; ok {
		return name
	}
	if categoryID == "" {
		return models.CategoryUncategorized
	}
	return categoryID
}

func sortByDueDate(lines []BillLine) {
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].DueDate < lines[j].DueDate
	})
}
