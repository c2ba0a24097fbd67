package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export PATH",
	Short: "Export all passwords to a CSV file",
	Long:  "Writes every stored application as a name,password line. The file holds plaintext secrets; handle it accordingly.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(path string) error {
	if err := manager.Export(path); err != nil {
		return err
	}
	fmt.Printf("Passwords exported to '%s'.\n", path)
	return nil
}
