package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kosarica/price-comparator/internal/catalog"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Manage price alerts",
	Long: `Manage price alerts. Alerts are only kept between invocations when a
database is configured.`,
}

var createAlertCmd = &cobra.Command{
	Use:   "create <productId> <targetPrice>",
	Short: "Create a price alert",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid target price %q", args[1])
		}
		if !backend.Persistent {
			logger.Warn().Msg("No database configured, the alert is discarded on exit")
		}
		alert, err := alertService.Create(cmd.Context(), args[0], target)
		if err != nil {
			return err
		}
		displayAlerts(cmd.OutOrStdout(), []catalog.PriceAlert{alert})
		return nil
	},
}

var listAlertsCmd = &cobra.Command{
	Use:   "list",
	Short: "List alerts that have not been triggered",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		alerts, err := alertService.ListActive(cmd.Context())
		if err != nil {
			return err
		}
		displayAlerts(cmd.OutOrStdout(), alerts)
		return nil
	},
}

var dueAlertsCmd = &cobra.Command{
	Use:   "due",
	Short: "List active alerts whose target price is currently met",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		alerts, err := alertService.DueAlerts(cmd.Context())
		if err != nil {
			return err
		}
		displayAlerts(cmd.OutOrStdout(), alerts)
		return nil
	},
}

var triggerAlertCmd = &cobra.Command{
	Use:   "trigger [alertId]",
	Short: "Mark an alert as triggered, or every due alert when no id is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			alerts, err := alertService.TriggerDue(cmd.Context())
			if err != nil {
				return err
			}
			displayAlerts(cmd.OutOrStdout(), alerts)
			return nil
		}
		alert, err := alertService.MarkTriggered(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		displayAlerts(cmd.OutOrStdout(), []catalog.PriceAlert{alert})
		return nil
	},
}

var checkPriceCmd = &cobra.Command{
	Use:   "check <productId> <targetPrice>",
	Short: "Report whether a product's cheapest current price meets a target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid target price %q", args[1])
		}
		below, err := analyzer.CheckBelowTarget(cmd.Context(), args[0], target)
		if err != nil {
			return err
		}
		if below {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is at or below %.2f\n", args[0], target)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is above %.2f\n", args[0], target)
		}
		return nil
	},
}

func init() {
	alertsCmd.AddCommand(createAlertCmd, listAlertsCmd, dueAlertsCmd, triggerAlertCmd, checkPriceCmd)
	rootCmd.AddCommand(alertsCmd)
}

func displayAlerts(out io.Writer, alerts []catalog.PriceAlert) {
	if len(alerts) == 0 {
		fmt.Fprintln(out, "No alerts")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tTARGET\tTRIGGERED\tCREATED")
	fmt.Fprintln(w, "--\t-------\t------\t---------\t-------")
	for _, a := range alerts {
		triggered := "-"
		if a.TriggeredAt != nil {
			triggered = a.TriggeredAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n", a.ID, a.ProductID, a.TargetPrice, triggered, a.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}
