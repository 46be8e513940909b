// Package scan handles the receipt scanning command
package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sandeep0076/budget-sage/cmd/common"
	"github.com/Sandeep0076/budget-sage/cmd/root"
	"github.com/Sandeep0076/budget-sage/internal/ledger"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/receipts"
)

var imageFile string

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a receipt image into transactions",
	Long: `Scan a receipt image. Line items are extracted with the configured
vision model, categorized, and recorded as expense transactions.`,
	Run: scanFunc,
}

func scanFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	cfg := root.Conf
	if cfg == nil || cfg.AI.APIKey == "" {
		root.Log.Fatal("Receipt scanning needs a Gemini API key (set GEMINI_API_KEY)")
	}

	vision, err := receipts.NewGeminiVision(ctx, cfg.AI.APIKey, cfg.AI.Model,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second, logger)
	if err != nil {
		root.Log.Fatalf("Error creating vision client: %v", err)
	}
	defer func() {
		if err := vision.Close(); err != nil {
			root.Log.Warnf("Failed to close vision client: %v", err)
		}
	}()

	cat, closeCat := common.NewCategorizer(ctx, cfg, root.DataDir(), s, root.Log)
	defer closeCat()

	scanner := receipts.NewScanner(vision, ledger.NewMaterializer(s, logger), cat, root.Currency(), logger)

	result, err := scanner.ScanFile(ctx, imageFile)
	if err != nil {
		root.Log.Fatalf("Error scanning receipt: %v", err)
	}

	for i, item := range result.Items {
		fmt.Printf("%2d. %-30s %s\n", i+1, item.Name, item.Amount)
	}
	root.Log.Infof("Recorded %d transactions from receipt", len(result.Transactions))
}

func init() {
	Cmd.Flags().StringVarP(&imageFile, "image", "i", "", "Receipt image file, jpeg or png (required)")
	_ = Cmd.MarkFlagRequired("image")
}
