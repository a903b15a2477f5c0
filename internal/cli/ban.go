package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newBanCmd() *cobra.Command {
	banCmd := &cobra.Command{
		Use:   "ban",
		Short: "Ban operations",
	}

	banCmd.AddCommand(newBanAddCmd())
	banCmd.AddCommand(newBanRemoveCmd())
	banCmd.AddCommand(newBanListCmd())
	banCmd.AddCommand(newBanSweepCmd())

	return banCmd
}

func newBanAddCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "add <driver-id> <kind>",
		Short: "Issue a manual ban (kind: quali or race)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"kind":   args[1],
				"reason": reason,
			}

			path := fmt.Sprintf("/api/v1/drivers/%s/bans", url.PathEscape(args[0]))
			var result Ban
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the ban")

	return cmd
}

func newBanRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <driver-id> <kind>",
		Short: "Remove a driver's bans of a kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/drivers/%s/bans/%s",
				url.PathEscape(args[0]), url.PathEscape(args[1]))
			var result BanRemovalResult
			if err := client.Delete(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBanListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active bans across all drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BanList
			if err := client.Get("/api/v1/bans", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBanSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Purge bans past the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SweepResult
			if err := client.Post("/api/v1/bans/sweep", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
