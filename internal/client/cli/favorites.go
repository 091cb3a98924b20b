package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runFavorites(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return c.runFavoritesList(ctx)
	case "toggle":
		if len(args) != 2 {
			return fmt.Errorf("usage: fav toggle <product-id>")
		}
		return c.runFavoritesToggle(ctx, args[1])
	default:
		return fmt.Errorf("unknown fav subcommand: %s", args[0])
	}
}

func (c *Cli) runFavoritesList(ctx context.Context) error {
	favorites, err := c.dataService.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("failed to read favorites: %w", err)
	}

	c.io.Println("=== Favorites ===")
	if len(favorites) == 0 {
		c.io.Println("No favorites yet.")
		return nil
	}

	for _, f := range favorites {
		c.io.Printf("%-20s added %s\n", f.ProductID, f.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}

func (c *Cli) runFavoritesToggle(ctx context.Context, productID string) error {
	added, err := c.dataService.ToggleFavorite(ctx, productID)
	if err != nil {
		return err
	}
	if added {
		c.io.Printf("✓ %s added to favorites.\n", productID)
	} else {
		c.io.Printf("✓ %s removed from favorites.\n", productID)
	}
	return nil
}
