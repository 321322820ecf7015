package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	sendTimeout time.Duration
	sendWait    bool
)

var sendCmd = &cobra.Command{
	Use:   "send <receipt.json>",
	Short: "Submit a receipt for fiscalization",
	Long: `Build, sign and submit a receipt described by a JSON file.

The file carries the header fields, the positions and the payment rows;
money values are decimal strings. When the id field is empty a random
one is generated and printed.

Examples:
  orangedata send receipt.json
  orangedata send receipt.json --wait
  orangedata -c prod.yaml send receipt.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 30*time.Second, "Submission timeout")
	sendCmd.Flags().BoolVar(&sendWait, "wait", false, "Poll until the receipt is processed")
}

func runSend(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	rf, err := readReceiptFile(args[0])
	if err != nil {
		return err
	}
	if err := applyReceipt(client, rf); err != nil {
		return fmt.Errorf("invalid receipt: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	printVerbose("Submitting receipt %s\n", rf.ID)
	resp, err := client.SendOrder(ctx)
	if err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}
	fmt.Printf("Accepted receipt %s (HTTP %d)\n", rf.ID, resp.StatusCode)

	if !sendWait {
		return nil
	}
	return pollOrderStatus(client, rf.ID)
}
