// Package transactions handles transaction recording and export commands
package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cmdcommon "github.com/Sandeep0076/budget-sage/cmd/common"
	"github.com/Sandeep0076/budget-sage/cmd/root"
	"github.com/Sandeep0076/budget-sage/internal/common"
	"github.com/Sandeep0076/budget-sage/internal/dateutils"
	"github.com/Sandeep0076/budget-sage/internal/ledger"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
)

var (
	description string
	amount      string
	date        string
	txType      string
	category    string
	note        string
	month       string
	csvFile     string
)

// Cmd represents the transactions command
var Cmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "Record and export transactions",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Run:   addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions for a month",
	Run:   listFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to a CSV file",
	Run:   exportFunc,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV file",
	Run:   importFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := cmdcommon.OpenStore(root.DataDir(), root.Log)
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	txDate := time.Now()
	if date != "" {
		parsed, err := dateutils.ParseDate(date)
		if err != nil {
			root.Log.Fatalf("Invalid date: %v", err)
		}
		txDate = parsed
	}

	money, err := models.NewMoneyFromString(amount, root.Currency())
	if err != nil {
		root.Log.Fatalf("Invalid amount: %v", err)
	}
	if !money.IsPositive() {
		root.Log.Fatal("Amount must be positive")
	}

	entryType := models.TransactionType(txType)
	if entryType != models.TransactionTypeIncome && entryType != models.TransactionTypeExpense {
		root.Log.Fatalf("Invalid type: %s (must be 'expense' or 'income')", txType)
	}

	materializer := ledger.NewMaterializer(s, logger)
	tx, err := materializer.Materialize(ctx, ledger.Entry{
		Description: description,
		Amount:      money,
		Date:        dateutils.Truncate(txDate),
		Type:        entryType,
		CategoryID:  category,
		Note:        note,
	})
	if err != nil {
		root.Log.Fatalf("Error recording transaction: %v", err)
	}

	root.Log.WithField(logging.FieldTransactionID, tx.ID).Info("Transaction recorded")
}

func listFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := cmdcommon.OpenStore(root.DataDir(), root.Log)

	from, to, err := monthRange(month)
	if err != nil {
		root.Log.Fatalf("Invalid month: %v", err)
	}

	transactions, err := s.ListTransactionsBetween(ctx, from, to)
	if err != nil {
		root.Log.Fatalf("Error listing transactions: %v", err)
	}

	for _, tx := range transactions {
		sign := "-"
		if tx.Type == models.TransactionTypeIncome {
			sign = "+"
		}
		fmt.Printf("%s  %s%s  %s\n", dateutils.ToISODate(tx.Date), sign, tx.Amount, tx.Description)
	}

	root.Log.WithField(logging.FieldCount, len(transactions)).Info("Listed transactions")
}

func exportFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := cmdcommon.OpenStore(root.DataDir(), root.Log)

	from, to, err := monthRange(month)
	if err != nil {
		root.Log.Fatalf("Invalid month: %v", err)
	}

	transactions, err := s.ListTransactionsBetween(ctx, from, to)
	if err != nil {
		root.Log.Fatalf("Error loading transactions: %v", err)
	}

	if err := common.WriteTransactionsToCSV(transactions, csvFile); err != nil {
		root.Log.Fatalf("Error exporting transactions: %v", err)
	}
	root.Log.Infof("Exported %d transactions to %s", len(transactions), csvFile)
}

func importFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := cmdcommon.OpenStore(root.DataDir(), root.Log)

	transactions, err := common.ImportTransactionsFromCSV(csvFile)
	if err != nil {
		root.Log.Fatalf("Error reading CSV: %v", err)
	}

	for _, tx := range transactions {
		if _, err := s.CreateTransaction(ctx, tx); err != nil {
			root.Log.Fatalf("Error importing transaction %s: %v", tx.ID, err)
		}
	}
	root.Log.Infof("Imported %d transactions from %s", len(transactions), csvFile)
}

// monthRange returns [start, end) of the given month, or of the current
// month when empty.
func monthRange(monthStr string) (time.Time, time.Time, error) {
	base := time.Now()
	if monthStr != "" {
		parsed, err := dateutils.ParseMonth(monthStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		base = parsed
	}
	from := dateutils.StartOfMonth(base)
	return from, from.AddDate(0, 1, 0), nil
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(importCmd)

	addCmd.Flags().StringVarP(&description, "description", "n", "", "What the transaction was for (required)")
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount, e.g. 12.90 (required)")
	addCmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date (default today)")
	addCmd.Flags().StringVarP(&txType, "type", "y", string(models.TransactionTypeExpense), "Transaction type (expense or income)")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category ID")
	addCmd.Flags().StringVarP(&note, "note", "m", "", "Free-text note")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("amount")

	listCmd.Flags().StringVarP(&month, "month", "M", "", "Month to list, e.g. 2026-09 (default current)")

	exportCmd.Flags().StringVarP(&month, "month", "M", "", "Month to export, e.g. 2026-09 (default current)")
	exportCmd.Flags().StringVarP(&csvFile, "csv", "C", "", "Output CSV file (required)")
	_ = exportCmd.MarkFlagRequired("csv")

	importCmd.Flags().StringVarP(&csvFile, "csv", "C", "", "Input CSV file (required)")
	_ = importCmd.MarkFlagRequired("csv")
}
