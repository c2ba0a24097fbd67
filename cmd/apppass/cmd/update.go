package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apppass/apppass"
)

var (
	updateLength   int
	updatePassword string
)

var updateCmd = &cobra.Command{
	Use:   "update NAME",
	Short: "Replace the password for an existing application",
	Long:  "Regenerates the password for the named application, or stores the value given with --password. An update never creates a new application.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(args[0])
	},
}

func init() {
	updateCmd.Flags().IntVarP(&updateLength, "length", "n", 0, "length of the regenerated password")
	updateCmd.Flags().StringVarP(&updatePassword, "password", "p", "", "store this value instead of regenerating")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(name string) error {
	var err error
	if updatePassword != "" {
		err = manager.UpdateCustom(name, updatePassword)
	} else {
		_, err = manager.UpdateRegenerate(name, updateLength)
	}
	if err != nil {
		if errors.Is(err, apppass.ErrNotFound) {
			fmt.Printf("No password found for '%s'.\n", name)
			return nil
		}
		return fmt.Errorf("failed to update password for '%s': %v", name, err)
	}
	fmt.Printf("Password updated successfully for '%s'.\n", name)
	return nil
}
