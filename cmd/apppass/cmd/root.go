package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apppass/apppass"
	_ "github.com/apppass/apppass/awssm"
	"github.com/apppass/apppass/keyring"
	_ "github.com/apppass/apppass/memory"
	_ "github.com/apppass/apppass/vault"
)

// StoreEnv selects the store backend; the OS keyring is the default.
const StoreEnv = "APPPASS_STORE"

var manager *apppass.Manager

var rootCmd = &cobra.Command{
	Use:          "apppass",
	Short:        "Generate and store secure passwords for your applications",
	Long:         "apppass keeps application passwords in the operating system credential store and can generate, list, update, export and time-expire them.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		backend := os.Getenv(StoreEnv)
		if backend == "" {
			backend = keyring.Name
		}
		store, err := apppass.New(backend, nil)
		if err != nil {
			return fmt.Errorf("failed to open store backend %q: %v", backend, err)
		}
		manager = apppass.NewManager(store)
		// Compensate for deletion timers killed by an earlier exit,
		// then drop an index that no longer backs anything.
		manager.CleanupExpiredOTPs()
		manager.CleanupOrphanedIndex()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
