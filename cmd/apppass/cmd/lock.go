package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/apppass/apppass"
)

var lockTimeout int

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Arm an auto-lock notice after a period of inactivity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLock()
	},
}

func init() {
	lockCmd.Flags().IntVar(&lockTimeout, "timeout", 60, "inactivity timeout in seconds")
	rootCmd.AddCommand(lockCmd)
}

func runLock() error {
	done := make(chan struct{})
	apppass.StartAutoLock(time.Duration(lockTimeout)*time.Second, func() {
		fmt.Println("Application locked due to inactivity.")
		close(done)
	})
	fmt.Printf("Auto-lock set to %d seconds.\n", lockTimeout)
	<-done
	return nil
}
