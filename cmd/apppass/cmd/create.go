package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apppass/apppass"
)

var (
	createLength      int
	createPassword    string
	createMemorizable bool
)

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a password for an application",
	Long:  "Generates and stores a password for the named application. With --password the supplied value is stored verbatim; with --memorizable a Word-NN-Word password is generated instead.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(args[0])
	},
}

func init() {
	createCmd.Flags().IntVarP(&createLength, "length", "n", 0, "password length (default 30 or the stored setting)")
	createCmd.Flags().StringVarP(&createPassword, "password", "p", "", "store this value instead of generating one")
	createCmd.Flags().BoolVar(&createMemorizable, "memorizable", false, "generate a memorizable Word-NN-Word password")
	rootCmd.AddCommand(createCmd)
}

func runCreate(name string) error {
	switch {
	case createPassword != "":
		if err := manager.CreateCustom(name, createPassword); err != nil {
			return createErr(name, err)
		}
		fmt.Printf("Password saved securely for '%s'.\n", name)
	case createMemorizable:
		password, err := manager.CreateMemorizable(name)
		if err != nil {
			return createErr(name, err)
		}
		fmt.Printf("Memorizable password saved for '%s': %s\n", name, password)
	default:
		if _, err := manager.CreateAuto(name, createLength); err != nil {
			return createErr(name, err)
		}
		fmt.Printf("Password generated and saved for '%s'.\n", name)
	}
	return nil
}

func createErr(name string, err error) error {
	if errors.Is(err, apppass.ErrExists) {
		return fmt.Errorf("a password for '%s' already exists; use update to replace it", name)
	}
	return fmt.Errorf("failed to save password for '%s': %v", name, err)
}
