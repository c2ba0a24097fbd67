package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Import passwords from a CSV file",
	Long:  "Reads name,password lines and stores each as a custom password, overwriting existing entries. Malformed lines are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(path string) error {
	if err := manager.Import(path); err != nil {
		return err
	}
	fmt.Printf("Passwords imported from '%s'.\n", path)
	return nil
}
