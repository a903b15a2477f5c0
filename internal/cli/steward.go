package cli

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in as a steward and save the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass := password
			if pass == "" {
				var err error
				pass, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			req := map[string]string{
				"username": args[0],
				"password": pass,
			}

			var result AuthResult
			if err := client.Post("/api/v1/stewards/login", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")

	return cmd
}

func newStewardCmd() *cobra.Command {
	stewardCmd := &cobra.Command{
		Use:   "steward",
		Short: "Steward account operations",
	}

	stewardCmd.AddCommand(newStewardCreateCmd())

	return stewardCmd
}

func newStewardCreateCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a steward account (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass := password
			if pass == "" {
				var err error
				pass, err = promptPassword("New steward password: ")
				if err != nil {
					return err
				}
			}

			req := map[string]string{
				"username": args[0],
				"password": pass,
			}

			if err := client.Post("/api/v1/stewards", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Created steward %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")

	return cmd
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	data, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(data), nil
}
