// Package main is the entry point for the rsa-vault-cli application.
// It initializes the root command and registers the RSA sub-commands
// for the CLI, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/SlightlyLoony/rsa-vault/cmd/rsa-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-vault-cli",
		Short: "RSA operations CLI tool",
		Long: `rsa-vault-cli is a command-line tool for RSA operations.
Supports key-pair generation, OAEP encryption/decryption of files, and
hash-then-sign signing and verification, all over tagged-string key files.`,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
