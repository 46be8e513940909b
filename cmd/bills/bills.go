// Package bills handles bill management commands
package bills

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sandeep0076/budget-sage/cmd/common"
	"github.com/Sandeep0076/budget-sage/cmd/root"
	"github.com/Sandeep0076/budget-sage/internal/billing"
	"github.com/Sandeep0076/budget-sage/internal/dateutils"
	"github.com/Sandeep0076/budget-sage/internal/ledger"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
)

var (
	name      string
	amount    string
	due       string
	recurring bool
	frequency string
	category  string
	notes     string
	status    string
)

// Cmd represents the bills command
var Cmd = &cobra.Command{
	Use:   "bills",
	Short: "Manage bills",
	Long:  `Add, list, pay and remove bills. Recurring bills roll over to the next occurrence when paid.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new bill",
	Run:   addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bills",
	Long:  `List bills with their current status. A pending bill past its due date shows as overdue.`,
	Run:   listFunc,
}

var payCmd = &cobra.Command{
	Use:   "pay <bill-id>",
	Short: "Mark a bill as paid",
	Long: `Mark a bill as paid. The payment is recorded as an expense transaction
and, for a recurring bill, the next occurrence is scheduled.`,
	Args: cobra.ExactArgs(1),
	Run:  payFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <bill-id>",
	Short: "Remove a bill",
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)

	dueDate, err := dateutils.ParseDate(due)
	if err != nil {
		root.Log.Fatalf("Invalid due date: %v", err)
	}

	builder := models.NewBillBuilder().
		WithName(name).
		WithAmountString(amount, root.Currency()).
		WithDueDate(dueDate).
		WithCategory(category).
		WithNotes(notes)
	if recurring {
		builder = builder.WithRecurrence(models.Frequency(frequency))
	}

	bill, err := builder.Build()
	if err != nil {
		root.Log.Fatalf("Error building bill: %v", err)
	}
	if err := billing.ValidateBill(&bill); err != nil {
		root.Log.Fatalf("Invalid bill: %v", err)
	}

	created, err := s.CreateBill(ctx, bill)
	if err != nil {
		root.Log.Fatalf("Error saving bill: %v", err)
	}

	root.Log.WithField(logging.FieldBillID, created.ID).Info("Bill added")
	fmt.Println(common.FormatBillLine(created, created.Status))
}

func listFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)

	bills, err := s.ListBills(ctx)
	if err != nil {
		root.Log.Fatalf("Error listing bills: %v", err)
	}

	now := time.Now()
	shown := 0
	for _, bill := range bills {
		effective := billing.EffectiveStatus(bill, now)
		if status != "" && string(effective) != status {
			continue
		}
		fmt.Println(common.FormatBillLine(bill, effective))
		shown++
	}

	root.Log.WithField(logging.FieldCount, shown).Info("Listed bills")
}

func payFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	engine := billing.NewEngine(s, ledger.NewMaterializer(s, logger), logger)

	result, err := engine.MarkPaid(ctx, args[0])
	if err != nil {
		root.Log.Fatalf("Error paying bill: %v", err)
	}

	fmt.Printf("Paid: %s (%s)\n", result.Bill.Name, result.Bill.Amount)
	if result.Transaction != nil {
		fmt.Printf("Recorded transaction %s\n", result.Transaction.ID)
	}
	if result.NextBill != nil {
		fmt.Printf("Next occurrence due %s (bill %s)\n",
			dateutils.ToISODate(result.NextBill.DueDate), result.NextBill.ID)
	}

	// Each warning needs its own remediation, so they are reported one by one.
	if result.HasWarning(billing.WarningTransactionNotRecorded) {
		root.Log.Warn("The payment transaction was NOT recorded; add it manually with 'transactions add'")
	}
	if result.HasWarning(billing.WarningNextBillNotScheduled) {
		root.Log.Warn("The next occurrence was NOT scheduled; add it manually with 'bills add'")
	}
}

func removeFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)

	if err := s.DeleteBill(ctx, args[0]); err != nil {
		root.Log.Fatalf("Error removing bill: %v", err)
	}
	root.Log.WithField(logging.FieldBillID, args[0]).Info("Bill removed")
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(payCmd)
	Cmd.AddCommand(removeCmd)

	addCmd.Flags().StringVarP(&name, "name", "n", "", "Bill name (required)")
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "Bill amount, e.g. 42.50 (required)")
	addCmd.Flags().StringVarP(&due, "due", "t", "", "Due date, e.g. 2026-09-30 (required)")
	addCmd.Flags().BoolVarP(&recurring, "recurring", "r", false, "Whether the bill recurs")
	addCmd.Flags().StringVarP(&frequency, "frequency", "q", string(models.FrequencyMonthly), "Recurrence frequency (daily, weekly, biweekly, monthly, quarterly, biannually, annually)")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category ID")
	addCmd.Flags().StringVarP(&notes, "notes", "m", "", "Free-text notes")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("due")

	listCmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (pending, paid, overdue)")
}
