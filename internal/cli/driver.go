package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newDriverCmd() *cobra.Command {
	driverCmd := &cobra.Command{
		Use:   "driver",
		Short: "Driver roster operations",
	}

	driverCmd.AddCommand(newDriverRegisterCmd())
	driverCmd.AddCommand(newDriverListCmd())
	driverCmd.AddCommand(newDriverRemoveCmd())

	return driverCmd
}

func newDriverRegisterCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "register <driver-id>",
		Short: "Register a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"driver_id":    args[0],
				"display_name": displayName,
			}

			var result Driver
			if err := client.Post("/api/v1/drivers", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name (defaults to the driver id)")

	return cmd
}

func newDriverListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DriverList
			if err := client.Get("/api/v1/drivers", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDriverRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <driver-id>",
		Short: "Remove a driver and all their penalties and bans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/drivers/%s", url.PathEscape(args[0]))
			if err := client.Delete(path, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed driver %s", args[0]))
			return nil
		},
	}
}
