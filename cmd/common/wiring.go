// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Sandeep0076/budget-sage/internal/categorizer"
	"github.com/Sandeep0076/budget-sage/internal/config"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
	"github.com/Sandeep0076/budget-sage/internal/store"
)

// OpenStore opens the file-backed store in the given directory. Errors are
// fatal: no command can do anything useful without storage.
func OpenStore(dataDir string, log *logrus.Logger) *store.FileStore {
	s, err := store.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("Error opening data store: %v", err)
	}
	return s
}

// NewCategorizer builds the categorization chain from configuration: learned
// payee mappings run first, then the keyword strategy, and the AI strategy is
// appended when AI is enabled. AI results are learned back into the mapping
// file under dataDir. The returned closer releases the AI client and must be
// called even when AI is disabled.
func NewCategorizer(ctx context.Context, cfg *config.Config, dataDir string, categories store.CategoryStore, log *logrus.Logger) (*categorizer.Categorizer, func()) {
	logger := logging.NewLogrusAdapterFromLogger(log)

	mappings := categorizer.NewMappingStrategy(filepath.Join(dataDir, "mappings.yaml"), categories, logger)
	strategies := []categorizer.Strategy{
		mappings,
		categorizer.NewKeywordStrategy(categories, logger),
	}
	closer := func() {}

	if cfg != nil && cfg.AI.Enabled {
		client, err := categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			log.Warnf("AI categorization unavailable: %v", err)
		} else {
			strategies = append(strategies, categorizer.NewAIStrategy(client, categories, logger))
			closer = func() {
				if err := client.Close(); err != nil {
					log.Warnf("Failed to close AI client: %v", err)
				}
			}
		}
	}

	cat := categorizer.New(categories, strategies, logger)
	cat.EnableLearning(mappings)
	return cat, closer
}

// WriteOutput writes rendered report bytes to the output file, or stdout
// when no file is given.
func WriteOutput(data []byte, outputFile string, log *logrus.Logger) {
	if outputFile == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(outputFile, data, models.PermissionDataFile); err != nil {
		log.Fatalf("Error writing output file: %v", err)
	}
	log.WithField("file", outputFile).Info("Report written")
}

// FormatBillLine renders one bill for terminal listing output.
func FormatBillLine(bill models.Bill, status models.BillStatus) string {
	marker := " "
	switch status {
	case models.BillStatusPaid:
		marker = "x"
	case models.BillStatusOverdue:
		marker = "!"
	}
	recurring := ""
	if bill.Recurring {
		recurring = fmt.Sprintf(" (%s)", bill.Frequency)
	}
	return fmt.Sprintf("[%s] %s  %s  due %s%s  %s",
		marker, bill.ID, bill.Name, bill.DueDate.Format("2006-01-02"), recurring, bill.Amount)
}
