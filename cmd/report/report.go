// Package report handles reporting commands
package report

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sandeep0076/budget-sage/cmd/common"
	"github.com/Sandeep0076/budget-sage/cmd/root"
	"github.com/Sandeep0076/budget-sage/internal/dateutils"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/report"
)

var (
	month string
	days  int
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate spending and bill reports",
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Spending summary for a month, with budget-vs-actual",
	Run:   monthlyFunc,
}

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Overdue and upcoming bills",
	Run:   outlookFunc,
}

func monthlyFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	reportMonth := time.Now()
	if month != "" {
		parsed, err := dateutils.ParseMonth(month)
		if err != nil {
			root.Log.Fatalf("Invalid month: %v", err)
		}
		reportMonth = parsed
	}

	summary, err := report.NewBuilder(s, root.Currency(), logger).Monthly(ctx, reportMonth)
	if err != nil {
		root.Log.Fatalf("Error building report: %v", err)
	}

	render(summary)
}

func outlookFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	horizon := time.Duration(days) * 24 * time.Hour
	outlook, err := report.NewBuilder(s, root.Currency(), logger).Outlook(ctx, horizon)
	if err != nil {
		root.Log.Fatalf("Error building report: %v", err)
	}

	render(outlook)
}

func render(data interface{}) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	out, err := report.NewGenerator(logger).Render(data, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error rendering report: %v", err)
	}
	common.WriteOutput(out, root.SharedFlags.Output, root.Log)
}

func init() {
	Cmd.AddCommand(monthlyCmd)
	Cmd.AddCommand(outlookCmd)

	monthlyCmd.Flags().StringVarP(&month, "month", "M", "", "Month to report, e.g. 2026-09 (default current)")
	outlookCmd.Flags().IntVarP(&days, "days", "D", 14, "How many days ahead to look for upcoming bills")
}
