package cli

import (
	"context"
	"fmt"
	"time"
)

// runBackgroundSync без аргументов делает один фоновый проход
// (синхронизация только при устаревшем кэше), с аргументом-интервалом
// крутит периодический цикл до отмены контекста.
func (c *Cli) runBackgroundSync(ctx context.Context, args []string) error {
	session, err := c.authService.CurrentSession(ctx)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		c.io.Println("Running background sync pass...")
		c.syncService.BackgroundSync(ctx, session.UserID)
		c.io.Println("Done")
		return nil
	}

	interval, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", args[0], err)
	}
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	c.io.Printf("Background sync loop started (interval %s), press Ctrl+C to stop\n", interval)
	c.syncService.RunBackground(ctx, session.UserID, interval)
	return nil
}
