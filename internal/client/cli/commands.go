package cli

import (
	"context"
	"fmt"
	"os"
)

// Run выполняет команду и завершает процесс с кодом 1 при ошибке
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "sync":
		err = c.runSync(ctx, args)
	case "background-sync":
		err = c.runBackgroundSync(ctx, args)
	case "cart":
		err = c.runCart(ctx, args)
	case "fav":
		err = c.runFavorites(ctx, args)
	case "prefs":
		err = c.runPreferences(ctx, args)
	case "alert":
		err = c.runAlerts(ctx, args)
	case "version":
		c.printVersion()
	case "help":
		PrintUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
