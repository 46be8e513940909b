// Package budgets handles monthly budget commands
package budgets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Sandeep0076/budget-sage/cmd/common"
	"github.com/Sandeep0076/budget-sage/cmd/root"
	"github.com/Sandeep0076/budget-sage/internal/dateutils"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/report"
)

var (
	category string
	month    string
	amount   string
)

// Cmd represents the budgets command
var Cmd = &cobra.Command{
	Use:   "budgets",
	Short: "Manage monthly budgets per category",
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a category's budget for a month",
	Long:  `Set a category's budget for a month. Setting an existing budget replaces its amount.`,
	Run:   setFunc,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show budget-vs-actual for a month",
	Run:   statusFunc,
}

func setFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)

	budgetMonth, err := resolveMonth(month)
	if err != nil {
		root.Log.Fatalf("Invalid month: %v", err)
	}

	money, err := models.NewMoneyFromString(amount, root.Currency())
	if err != nil {
		root.Log.Fatalf("Invalid amount: %v", err)
	}
	if !money.IsPositive() {
		root.Log.Fatal("Budget amount must be positive")
	}

	if _, err := s.GetCategory(ctx, category); err != nil {
		root.Log.Fatalf("Unknown category: %v", err)
	}

	budget, err := s.UpsertBudget(ctx, models.Budget{
		ID:         uuid.NewString(),
		CategoryID: category,
		Month:      budgetMonth,
		Amount:     money,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		root.Log.Fatalf("Error saving budget: %v", err)
	}

	root.Log.WithField(logging.FieldBudgetID, budget.ID).Info("Budget set")
	fmt.Printf("%s budget for %s: %s\n", budget.CategoryID, budget.Month.Format(dateutils.DateLayoutMonth), budget.Amount)
}

func statusFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)

	budgetMonth, err := resolveMonth(month)
	if err != nil {
		root.Log.Fatalf("Invalid month: %v", err)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	summary, err := report.NewBuilder(s, root.Currency(), logger).Monthly(ctx, budgetMonth)
	if err != nil {
		root.Log.Fatalf("Error building summary: %v", err)
	}

	fmt.Printf("Budget status for %s\n", summary.Month)
	for _, row := range summary.Categories {
		if row.Budget == nil {
			fmt.Printf("  %-20s spent %s (no budget)\n", row.CategoryName, row.Spent)
			continue
		}
		over := ""
		if row.OverBudget {
			over = "  OVER BUDGET"
		}
		fmt.Printf("  %-20s spent %s of %s, %s left%s\n",
			row.CategoryName, row.Spent, *row.Budget, *row.Remaining, over)
	}
}

func resolveMonth(monthStr string) (time.Time, error) {
	if monthStr == "" {
		return dateutils.StartOfMonth(time.Now()), nil
	}
	parsed, err := dateutils.ParseMonth(monthStr)
	if err != nil {
		return time.Time{}, err
	}
	return dateutils.StartOfMonth(parsed), nil
}

func init() {
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(statusCmd)

	setCmd.Flags().StringVarP(&category, "category", "c", "", "Category ID (required)")
	setCmd.Flags().StringVarP(&month, "month", "M", "", "Month, e.g. 2026-09 (default current)")
	setCmd.Flags().StringVarP(&amount, "amount", "a", "", "Budget amount, e.g. 400 (required)")
	_ = setCmd.MarkFlagRequired("category")
	_ = setCmd.MarkFlagRequired("amount")

	statusCmd.Flags().StringVarP(&month, "month", "M", "", "Month, e.g. 2026-09 (default current)")
}
