package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newPenaltyCmd() *cobra.Command {
	penaltyCmd := &cobra.Command{
		Use:   "penalty",
		Short: "Penalty point operations",
	}

	penaltyCmd.AddCommand(newPenaltyAwardCmd())
	penaltyCmd.AddCommand(newPenaltyRemoveCmd())
	penaltyCmd.AddCommand(newPenaltyHistoryCmd())
	penaltyCmd.AddCommand(newPenaltyTotalCmd())

	return penaltyCmd
}

func newPenaltyAwardCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "award <driver-id> <points>",
		Short: "Award penalty points to a driver",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid points: %s", args[1])
			}

			req := map[string]any{
				"points": points,
				"reason": reason,
			}

			path := fmt.Sprintf("/api/v1/drivers/%s/penalties", url.PathEscape(args[0]))
			var result AwardResult
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the penalty")

	return cmd
}

func newPenaltyRemoveCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "remove <driver-id> <amount>",
		Short: "Remove penalty points, newest entries first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %s", args[1])
			}

			req := map[string]any{
				"amount": amount,
				"reason": reason,
			}

			path := fmt.Sprintf("/api/v1/drivers/%s/penalties/remove", url.PathEscape(args[0]))
			var result RemovalResult
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the removal")

	return cmd
}

func newPenaltyHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <driver-id>",
		Short: "Show a driver's penalty history, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/drivers/%s/penalties", url.PathEscape(args[0]))
			var result PenaltyHistory
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPenaltyTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total <driver-id>",
		Short: "Show a driver's current point total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/drivers/%s/points", url.PathEscape(args[0]))
			var result PointTotal
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
