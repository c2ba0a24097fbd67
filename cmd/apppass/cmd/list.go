package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all applications and their passwords",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList() error {
	entries, err := manager.List()
	if err != nil {
		return fmt.Errorf("failed to list applications: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("No applications stored.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("Application Name: %s\n", e.Name)
		fmt.Printf("Password: %s\n", e.Password)
		if e.OTPExpiry > 0 {
			fmt.Printf("Expires: %s\n", time.Unix(e.OTPExpiry, 0).Format(time.RFC1123))
		}
		fmt.Println()
	}
	return nil
}
