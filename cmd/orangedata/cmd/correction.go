package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/orangedata-go/pkg/orangedata"
)

var (
	correctionTimeout time.Duration
	correctionFFD     string
)

var correctionCmd = &cobra.Command{
	Use:   "correction <correction.json>",
	Short: "Submit a correction receipt",
	Long: `Build, sign and submit a correction receipt described by a JSON file.

Corrections in format 1.2 may carry positions and payment rows and are
routed to the dedicated endpoint pair; format 1.05 corrections carry
only the summary sums.

Examples:
  orangedata correction correction.json
  orangedata -c prod.yaml correction correction.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCorrection,
}

var correctionStatusCmd = &cobra.Command{
	Use:   "correction-status <document-id>",
	Short: "Query the processing state of a correction",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorrectionStatus,
}

func init() {
	rootCmd.AddCommand(correctionCmd)
	rootCmd.AddCommand(correctionStatusCmd)

	correctionCmd.Flags().DurationVar(&correctionTimeout, "timeout", 30*time.Second, "Submission timeout")
	correctionStatusCmd.Flags().StringVar(&correctionFFD, "ffd", "1.05", "Fiscal data format of the correction (1.05 or 1.2)")
}

func runCorrection(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	cf, err := readCorrectionFile(args[0])
	if err != nil {
		return err
	}
	if err := applyCorrection(client, cf); err != nil {
		return fmt.Errorf("invalid correction: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), correctionTimeout)
	defer cancel()

	printVerbose("Submitting correction %s (format %s)\n", cf.ID, cf.FFDVersion)
	resp, err := client.SendCorrection(ctx)
	if err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}
	fmt.Printf("Accepted correction %s (HTTP %d)\n", cf.ID, resp.StatusCode)
	return nil
}

func runCorrectionStatus(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	rev := orangedata.Revision(correctionFFD)
	ctx, cancel := context.WithTimeout(context.Background(), correctionTimeout)
	defer cancel()

	resp, err := client.CorrectionStatus(ctx, rev, args[0])
	if err != nil {
		return fmt.Errorf("status query failed: %w", err)
	}
	printStatus(resp)
	return nil
}
