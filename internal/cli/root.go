// Package cli implements the dearctl command-line interface: a thin client
// for the journaling server used for administration and smoke testing.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/adapter"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/spf13/cobra"
)

// Global flags
var (
	serverAddress string
	bearerToken   string
	timeout       time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dearctl",
	Short: "dearctl – interact with the journaling server",
	Long:  `A command-line utility for registering accounts, managing journal entries, and running emotional, theme, and crisis analyses against a journaling server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&serverAddress, "server", "s", "http://localhost:8080", "Journaling server address")
	rootCmd.PersistentFlags().StringVarP(&bearerToken, "token", "t", os.Getenv("DEARCTL_TOKEN"), "Bearer token (defaults to $DEARCTL_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
}

// newAdapter builds the HTTP client from the persistent flags.
func newAdapter() (adapter.ServerAdapter, error) {
	srv, err := adapter.NewHTTPServerAdapter(serverAddress, timeout, logger.Nop())
	if err != nil {
		return nil, err
	}
	srv.SetToken(bearerToken)
	return srv, nil
}
