package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/orangedata-go/pkg/orangedata"
)

var (
	statusWait     bool
	statusInterval time.Duration
	statusTimeout  time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status <document-id>",
	Short: "Query the processing state of a receipt",
	Long: `Query the registrar for the processing state of a submitted receipt.

A receipt still in the queue yields "processing"; a processed one is
printed as the registrar's JSON status body.

Examples:
  orangedata status 23423423-abc2
  orangedata status 23423423-abc2 --wait --interval 2s`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusWait, "wait", false, "Poll until the receipt is processed")
	statusCmd.Flags().DurationVar(&statusInterval, "interval", 2*time.Second, "Polling interval")
	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 2*time.Minute, "Total polling timeout")
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	if statusWait {
		return pollOrderStatus(client, args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	resp, err := client.OrderStatus(ctx, args[0])
	if err != nil {
		return fmt.Errorf("status query failed: %w", err)
	}
	printStatus(resp)
	return nil
}

// pollOrderStatus queries the registrar until the document leaves the
// processing queue or the polling timeout elapses.
func pollOrderStatus(client *orangedata.Client, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		resp, err := client.OrderStatus(ctx, id)
		if err != nil {
			return fmt.Errorf("status query failed: %w", err)
		}
		if !resp.Processing() {
			printStatus(resp)
			return nil
		}
		printVerbose("Receipt %s still processing\n", id)

		select {
		case <-ctx.Done():
			return fmt.Errorf("receipt %s not processed within %s", id, statusTimeout)
		case <-ticker.C:
		}
	}
}

func printStatus(resp *orangedata.Response) {
	if resp.Processing() {
		fmt.Println("processing")
		return
	}
	os.Stdout.Write(resp.Body)
	fmt.Println()
}
