package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apppass/apppass"
)

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete the password for an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelete(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(name string) error {
	if err := manager.Delete(name); err != nil {
		if errors.Is(err, apppass.ErrNotFound) {
			fmt.Printf("No password found for '%s'.\n", name)
			return nil
		}
		return fmt.Errorf("failed to delete password for '%s': %v", name, err)
	}
	fmt.Printf("Password for '%s' deleted successfully.\n", name)
	return nil
}
