package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/apppass/apppass"
)

var (
	otpTTL    int
	otpLength int
)

var otpCmd = &cobra.Command{
	Use:   "otp NAME",
	Short: "Generate a one-time password with a time-to-live",
	Long:  "Generates a time-boxed password for the named application. It is deleted automatically once the TTL elapses, at the latest on the next apppass invocation.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOTP(args[0])
	},
}

func init() {
	otpCmd.Flags().IntVar(&otpTTL, "ttl", 300, "time-to-live in seconds")
	otpCmd.Flags().IntVarP(&otpLength, "length", "n", 10, "OTP length")
	rootCmd.AddCommand(otpCmd)
}

func runOTP(name string) error {
	ttl := time.Duration(otpTTL) * time.Second
	otp, err := manager.GenerateOTP(name, ttl, otpLength)
	if err != nil {
		if errors.Is(err, apppass.ErrExists) {
			return fmt.Errorf("a password for '%s' already exists; delete it before generating an OTP", name)
		}
		return fmt.Errorf("failed to generate OTP for '%s': %v", name, err)
	}
	fmt.Printf("Temporary password for '%s': %s\n", name, otp)
	fmt.Printf("Expires at: %s\n", time.Now().Add(ttl).Format(time.RFC1123))
	return nil
}
