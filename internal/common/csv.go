// Package common provides shared CSV input/output helpers.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/Sandeep0076/budget-sage/internal/config"
	"github.com/Sandeep0076/budget-sage/internal/currencyutils"
	"github.com/Sandeep0076/budget-sage/internal/dateutils"
	"github.com/Sandeep0076/budget-sage/internal/models"
)

var log = config.Logger

// Delimiter is the CSV field separator used for all output.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// transactionRow is the flat CSV shape of a transaction. Amounts and dates
// are serialized as strings so the file round-trips exactly.
type transactionRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Currency    string `csv:"Currency"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Note        string `csv:"Note"`
}

func toRow(tx models.Transaction) transactionRow {
	return transactionRow{
		ID:          tx.ID,
		Date:        dateutils.ToISODate(tx.Date),
		Description: tx.Description,
		Amount:      tx.Amount.Amount.StringFixed(2),
		Currency:    tx.Amount.Currency,
		Type:        string(tx.Type),
		Category:    tx.CategoryID,
		Note:        tx.Note,
	}
}

func fromRow(row transactionRow) (models.Transaction, error) {
	date, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid date '%s': %w", row.Date, err)
	}
	amount, err := currencyutils.ParseAmount(row.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount '%s': %w", row.Amount, err)
	}

	txType := models.TransactionType(row.Type)
	if txType != models.TransactionTypeIncome {
		txType = models.TransactionTypeExpense
	}

	return models.Transaction{
		ID:          row.ID,
		Description: row.Description,
		Amount:      models.NewMoney(amount, row.Currency),
		Date:        date,
		Type:        txType,
		CategoryID:  row.Category,
		Note:        row.Note,
	}, nil
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.WithField("file", filePath).Info("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField("count", len(rows)).Info("Successfully read CSV data")
	return rows, nil
}

// WriteTransactionsToCSV writes transactions to a CSV file in a
// standardized format.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]transactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, toRow(tx))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}

// ImportTransactionsFromCSV reads a CSV file previously produced by
// WriteTransactionsToCSV back into transactions. Rows that fail to parse
// abort the import.
func ImportTransactionsFromCSV(csvFile string) ([]models.Transaction, error) {
	rows, err := ReadCSVFile[transactionRow](csvFile)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}
