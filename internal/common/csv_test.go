package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sandeep0076/budget-sage/internal/models"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "tx-1",
			Description: "Migros",
			Amount:      models.NewMoneyFromFloat(42.50, "EUR"),
			Date:        time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
			Type:        models.TransactionTypeExpense,
			CategoryID:  "cat-groceries",
			Note:        "weekly shop",
		},
		{
			ID:          "tx-2",
			Description: "Salary",
			Amount:      models.NewMoneyFromFloat(5000, "EUR"),
			Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Type:        models.TransactionTypeIncome,
		},
	}
}

func TestWriteAndImportTransactionsCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "transactions.csv")

	require.NoError(t, WriteTransactionsToCSV(sampleTransactions(), csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "ID,Date,Description,Amount,Currency,Type,Category,Note")
	assert.Contains(t, content, "tx-1,2024-03-03,Migros,42.50,EUR,expense,cat-groceries,weekly shop")

	imported, err := ImportTransactionsFromCSV(csvFile)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, "tx-1", imported[0].ID)
	assert.Equal(t, "Migros", imported[0].Description)
	assert.True(t, imported[0].Amount.Equal(models.NewMoneyFromFloat(42.50, "EUR")))
	assert.Equal(t, models.TransactionTypeExpense, imported[0].Type)
	assert.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), imported[0].Date)

	assert.Equal(t, models.TransactionTypeIncome, imported[1].Type)
}

func TestWriteTransactionsToCSVNil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}

func TestWriteTransactionsToCSVCreatesDirectory(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")

	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, csvFile))
	_, err := os.Stat(csvFile)
	assert.NoError(t, err)
}

func TestImportTransactionsBadRow(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "bad.csv")
	content := "ID,Date,Description,Amount,Currency,Type,Category,Note\n" +
		"tx-1,not-a-date,Migros,42.50,EUR,expense,,\n"
	require.NoError(t, os.WriteFile(csvFile, []byte(content), 0644))

	_, err := ImportTransactionsFromCSV(csvFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestSetDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)

	SetDelimiter(';')
	assert.Equal(t, ';', Delimiter)

	csvFile := filepath.Join(t.TempDir(), "semicolon.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleTransactions()[:1], csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tx-1;2024-03-03;Migros")
}