package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/apppass/apppass"
)

var lengthReset bool

var lengthCmd = &cobra.Command{
	Use:   "length [N]",
	Short: "Show or set the default password length",
	Long:  "Without arguments prints the stored default generation length. With N sets it (8-128). --reset removes the stored setting.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLength(args)
	},
}

func init() {
	lengthCmd.Flags().BoolVar(&lengthReset, "reset", false, "remove the stored setting")
	rootCmd.AddCommand(lengthCmd)
}

func runLength(args []string) error {
	if lengthReset {
		if err := manager.ResetDefaultLength(); err != nil {
			return fmt.Errorf("failed to reset default length: %v", err)
		}
		fmt.Printf("Default password length reset to %d.\n", apppass.DefaultLength)
		return nil
	}
	if len(args) == 0 {
		if n, ok := manager.DefaultLengthSetting(); ok {
			fmt.Printf("Default password length: %d\n", n)
		} else {
			fmt.Printf("Default password length: %d (built-in)\n", apppass.DefaultLength)
		}
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid length %q", args[0])
	}
	if err := manager.SetDefaultLength(n); err != nil {
		return err
	}
	fmt.Printf("Default password length set to %d.\n", n)
	return nil
}
