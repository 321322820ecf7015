package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/orangedata-go/internal/config"
	"github.com/rezonia/orangedata-go/pkg/orangedata"
)

var (
	version = "1.0.0"

	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "orangedata",
	Short: "Submit fiscal receipts to the OrangeData registrar",
	Long: `orangedata builds, signs and submits fiscal receipts (and
correction receipts) to the online cash register service, then polls
their processing status.

Configuration is a YAML file naming the taxpayer id, the registrar URL
and the key/certificate files.

Examples:
  # Submit a receipt described in a JSON file
  orangedata send receipt.json --config orangedata.yaml

  # Poll a submitted receipt
  orangedata status 2734-abc --config orangedata.yaml

  # Submit a correction
  orangedata correction correction.json --config orangedata.yaml

  # Run the local REST bridge
  orangedata serve --config orangedata.yaml`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (env: ORANGEDATA_CONFIG)")
}

// loadConfig resolves the config path from the flag or environment.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("ORANGEDATA_CONFIG")
	}
	if path == "" {
		path = "orangedata.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func newClient() (*orangedata.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := orangedata.NewClient(orangedata.Options{
		INN:            cfg.INN,
		APIURL:         cfg.APIURL,
		Group:          cfg.Group,
		SignKeyFile:    cfg.SignKeyFile,
		ClientCertFile: cfg.ClientCertFile,
		ClientKeyFile:  cfg.ClientKeyFile,
		CACertFile:     cfg.CACertFile,
		Timeout:        cfg.Timeout(),
		Verbose:        cfg.Verbose,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
