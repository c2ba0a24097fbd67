package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apppass/apppass"
)

var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Show the password for an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(args[0])
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(name string) error {
	password, err := manager.Password(name)
	if err != nil {
		if errors.Is(err, apppass.ErrNotFound) {
			fmt.Printf("No password found for '%s'.\n", name)
			return nil
		}
		return fmt.Errorf("failed to retrieve password for '%s': %v", name, err)
	}
	fmt.Printf("Application Name: %s\n", name)
	fmt.Printf("Password: %s\n", password)
	return nil
}
