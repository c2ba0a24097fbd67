package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole()
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println()
		fmt.Println("apppass console")
		fmt.Println("  1) generate password   2) store custom password")
		fmt.Println("  3) list                4) get")
		fmt.Println("  5) update              6) delete")
		fmt.Println("  7) generate OTP        8) default length")
		fmt.Println("  9) export             10) import")
		fmt.Println("  q) quit")
		fmt.Print("> ")

		choice, err := readLine(reader)
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			name := prompt(reader, "Application name: ")
			if _, err := manager.CreateAuto(name, 0); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", createErr(name, err))
				continue
			}
			fmt.Printf("Password generated and saved for '%s'.\n", name)
		case "2":
			name := prompt(reader, "Application name: ")
			password := prompt(reader, "Password: ")
			if err := manager.CreateCustom(name, password); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", createErr(name, err))
				continue
			}
			fmt.Printf("Password saved securely for '%s'.\n", name)
		case "3":
			if err := runList(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "4":
			name := prompt(reader, "Application name: ")
			if err := runGet(name); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "5":
			name := prompt(reader, "Application name: ")
			password := prompt(reader, "New password (empty to regenerate): ")
			updatePassword = password
			if err := runUpdate(name); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			updatePassword = ""
		case "6":
			name := prompt(reader, "Application name: ")
			if err := runDelete(name); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "7":
			name := prompt(reader, "Application name: ")
			ttl := promptInt(reader, "TTL in seconds (default 300): ", 300)
			otp, err := manager.GenerateOTP(name, time.Duration(ttl)*time.Second, 0)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("Temporary password for '%s': %s\n", name, otp)
		case "8":
			n := promptInt(reader, "Default length (8-128): ", 0)
			if err := manager.SetDefaultLength(n); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("Default password length set to %d.\n", n)
		case "9":
			path := prompt(reader, "Export file path: ")
			if err := runExport(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "10":
			path := prompt(reader, "Import file path: ")
			if err := runImport(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := readLine(reader)
	if err != nil {
		return ""
	}
	return line
}

func promptInt(reader *bufio.Reader, label string, fallback int) int {
	line := prompt(reader, label)
	if line == "" {
		return fallback
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return fallback
	}
	return n
}
