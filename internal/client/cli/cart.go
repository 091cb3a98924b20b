package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/shopsync/internal/models"
)

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return c.runCartList(ctx)
	case "add":
		if len(args) != 5 {
			return fmt.Errorf("usage: cart add <product-id> <name> <quantity> <price>")
		}
		return c.runCartAdd(ctx, args[1], args[2], args[3], args[4])
	case "qty":
		if len(args) != 3 {
			return fmt.Errorf("usage: cart qty <product-id> <quantity>")
		}
		return c.runCartQuantity(ctx, args[1], args[2])
	case "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: cart rm <product-id>")
		}
		return c.runCartRemove(ctx, args[1])
	default:
		return fmt.Errorf("unknown cart subcommand: %s", args[0])
	}
}

func (c *Cli) runCartList(ctx context.Context) error {
	cart, err := c.dataService.ListCart(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}

	c.io.Println("=== Cart ===")
	if len(cart) == 0 {
		c.io.Println("Cart is empty.")
		return nil
	}

	var total float64
	for _, item := range cart {
		c.io.Printf("%-20s %-30s x%-4d %10.2f\n", item.ProductID, item.Name, item.Quantity, item.UnitPrice)
		total += float64(item.Quantity) * item.UnitPrice
	}
	c.io.Println()
	c.io.Printf("Items: %d, total: %.2f\n", len(cart), total)
	return nil
}

func (c *Cli) runCartAdd(ctx context.Context, productID, name, quantityArg, priceArg string) error {
	quantity, err := strconv.Atoi(quantityArg)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", quantityArg)
	}
	price, err := strconv.ParseFloat(priceArg, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", priceArg)
	}

	err = c.dataService.AddCartItem(ctx, models.CartItem{
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: price,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Added %s x%d to cart.\n", name, quantity)
	return nil
}

func (c *Cli) runCartQuantity(ctx context.Context, productID, quantityArg string) error {
	quantity, err := strconv.Atoi(quantityArg)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", quantityArg)
	}

	if err := c.dataService.UpdateCartQuantity(ctx, productID, quantity); err != nil {
		return err
	}
	c.io.Printf("✓ Quantity of %s set to %d.\n", productID, quantity)
	return nil
}

func (c *Cli) runCartRemove(ctx context.Context, productID string) error {
	if err := c.dataService.RemoveCartItem(ctx, productID); err != nil {
		return err
	}
	c.io.Printf("✓ Removed %s from cart.\n", productID)
	return nil
}
