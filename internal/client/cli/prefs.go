package cli

import (
	"context"
	"fmt"
	"sort"
)

func (c *Cli) runPreferences(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return c.runPreferencesList(ctx)
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: prefs set <key> <value>")
		}
		return c.runPreferencesSet(ctx, args[1], args[2])
	default:
		return fmt.Errorf("unknown prefs subcommand: %s", args[0])
	}
}

func (c *Cli) runPreferencesList(ctx context.Context) error {
	prefs, err := c.dataService.GetPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	c.io.Println("=== Preferences ===")
	if len(prefs) == 0 {
		c.io.Println("No preferences set.")
		return nil
	}

	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c.io.Printf("%-24s %v\n", k, prefs[k])
	}
	return nil
}

func (c *Cli) runPreferencesSet(ctx context.Context, key, value string) error {
	if err := c.dataService.SetPreference(ctx, key, value); err != nil {
		return err
	}
	c.io.Printf("✓ %s = %s\n", key, value)
	return nil
}
