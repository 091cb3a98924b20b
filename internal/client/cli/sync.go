package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/shopsync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	full := len(args) > 0 && args[0] == "full"

	session, err := c.authService.CurrentSession(ctx)
	if err != nil {
		return err
	}

	var result *sync.Result
	if full {
		c.io.Println("Dropping local cache and pulling server state...")
		result, err = c.syncService.ForceFullSync(ctx, session.UserID)
	} else {
		c.io.Println("Synchronizing with server...")
		result, err = c.syncService.SyncUserData(ctx, session.UserID)
	}
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	if result.Success() {
		c.io.Println("✓ Synchronization completed!")
	} else {
		c.io.Println("Synchronization completed with errors:")
		c.io.Printf("  %v\n", result.Err())
	}
	c.io.Println()
	c.io.Printf("Domains synced: %d\n", len(result.Synced))
	for domain, skipped := range result.Skipped {
		c.io.Printf("Invalid records skipped in %s: %d\n", domain, skipped)
	}
	if result.Alerts.Evaluated > 0 {
		c.io.Printf("Price alerts checked: %d, fired: %d\n", result.Alerts.Evaluated, result.Alerts.Fired)
	}
	c.io.Printf("Duration: %s\n", result.Duration)

	if !result.Success() {
		return fmt.Errorf("some domains failed to sync")
	}
	return nil
}
