package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/orangedata-go/internal/server"
	"github.com/rezonia/orangedata-go/internal/signature"
	"github.com/rezonia/orangedata-go/internal/transport"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP bridge server",
	Long: `Start an HTTP server that accepts plain JSON receipts, signs them
with the configured key and forwards them to the registrar.

The API provides endpoints for:
  - POST /api/v1/orders                  - Submit a receipt
  - GET  /api/v1/orders/:id/status       - Query receipt state
  - POST /api/v1/corrections             - Submit a correction
  - GET  /api/v1/corrections/:id/status  - Query correction state
  - GET  /health                         - Health check

Examples:
  # Start on the default port
  orangedata serve

  # Start on a custom port in debug mode
  orangedata serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 60*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	signer, err := signature.LoadRSASigner(cfg.SignKeyFile)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}

	registrar, err := transport.New(transport.Config{
		BaseURL:        cfg.APIURL,
		INN:            cfg.INN,
		ClientCertFile: cfg.ClientCertFile,
		ClientKeyFile:  cfg.ClientKeyFile,
		CACertFile:     cfg.CACertFile,
		Timeout:        cfg.Timeout(),
		Verbose:        verbose || cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to build registrar transport: %w", err)
	}

	srv := server.NewServer(&server.Config{
		Address:      serverAddr,
		INN:          cfg.INN,
		Group:        cfg.Group,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}, signer, registrar)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s (registrar %s)\n", serverAddr, cfg.APIURL)
	return srv.Run()
}
