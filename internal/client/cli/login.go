package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	session, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	c.io.Println()

	// Сразу подтягиваем серверное состояние на устройство
	c.io.Println("Synchronizing your data...")
	result, err := c.syncService.SyncUserData(ctx, session.UserID)
	if err != nil {
		c.io.Printf("Warning: initial sync failed: %v\n", err)
		return nil
	}
	if !result.Success() {
		c.io.Printf("Warning: some domains failed to sync: %v\n", result.Err())
		return nil
	}
	c.io.Println("✓ All data synchronized.")

	return nil
}
