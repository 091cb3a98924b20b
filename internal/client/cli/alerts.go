package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

func (c *Cli) runAlerts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return c.runAlertsList(ctx)
	case "add":
		if len(args) != 3 {
			return fmt.Errorf("usage: alert add <product-id> <target-price>")
		}
		return c.runAlertsAdd(ctx, args[1], args[2])
	case "off":
		if len(args) != 2 {
			return fmt.Errorf("usage: alert off <alert-id>")
		}
		return c.runAlertsOff(ctx, args[1])
	default:
		return fmt.Errorf("unknown alert subcommand: %s", args[0])
	}
}

func (c *Cli) runAlertsList(ctx context.Context) error {
	alerts, err := c.dataService.ListPriceAlerts(ctx)
	if err != nil {
		return fmt.Errorf("failed to read alerts: %w", err)
	}

	c.io.Println("=== Price Alerts ===")
	if len(alerts) == 0 {
		c.io.Println("No price alerts.")
		return nil
	}

	for _, alert := range alerts {
		state := "inactive"
		switch {
		case alert.Triggered():
			state = "fired " + alert.TriggeredAt.Format(time.RFC3339)
		case alert.IsActive:
			state = "active"
		}
		c.io.Printf("%-36s %-20s target %8.2f  [%s]\n", alert.ID, alert.ProductID, alert.TargetPrice, state)
	}
	return nil
}

func (c *Cli) runAlertsAdd(ctx context.Context, productID, priceArg string) error {
	target, err := strconv.ParseFloat(priceArg, 64)
	if err != nil {
		return fmt.Errorf("invalid target price %q", priceArg)
	}

	alert, err := c.dataService.CreatePriceAlert(ctx, productID, target)
	if err != nil {
		return err
	}
	c.io.Printf("✓ Alert %s created: notify when %s drops to %.2f.\n", alert.ID, productID, target)
	return nil
}

func (c *Cli) runAlertsOff(ctx context.Context, alertID string) error {
	if err := c.dataService.DeactivatePriceAlert(ctx, alertID); err != nil {
		return err
	}
	c.io.Printf("✓ Alert %s deactivated.\n", alertID)
	return nil
}
