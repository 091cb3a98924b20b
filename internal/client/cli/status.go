package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/shopsync/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.CurrentSession(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'shopsync login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to check session: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))

	needed, err := c.syncService.IsSyncNeeded(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to check cache freshness: %v\n", err)
		return nil
	}

	c.io.Println()
	if needed {
		c.io.Println("Local cache is stale. Run 'shopsync sync' to refresh.")
	} else {
		c.io.Println("✓ Local cache is fresh.")
	}

	return nil
}
