package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/JAX838/delight-vision-sounds/internal/formatter"
	"github.com/JAX838/delight-vision-sounds/internal/services"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

// CartShow prints the cart contents and totals.
func (r *Runner) CartShow(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	store, closeStore, err := r.openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	snap := store.Snapshot()
	if useJSON {
		return r.writeJSON(snap, true)
	}

	if len(snap.Lines) == 0 {
		r.writePlain("Your cart is empty\n")
		return nil
	}

	receipt, err := formatter.ExportCartToText(snap.Lines, r.config.Store.Currency)
	if err != nil {
		return fmt.Errorf("failed to render cart: %w", err)
	}
	return r.writePlain("%s", receipt)
}

// CartAdd adds a product to the cart by ID.
func (r *Runner) CartAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	quantity := cmd.Int("quantity")

	if id == "" {
		return fmt.Errorf("%w: product id", shared.ErrMissingArgument)
	}

	store, closeStore, err := r.openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	engine := r.shopEngine(store)
	snap, err := engine.AddToCartByID(ctx, id, quantity)
	if errors.Is(err, shared.ErrOutOfStock) {
		r.writePlain("This product is out of stock\n")
		return err
	}
	if err != nil {
		return err
	}

	r.writePlain("✓ Added to cart\n")
	r.writePlain("Cart: %d items, %s\n", snap.Count, formatter.Amount(r.config.Store.Currency, snap.Total))
	return nil
}

// CartRemove removes a product's line from the cart.
func (r *Runner) CartRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: product id", shared.ErrMissingArgument)
	}

	store, closeStore, err := r.openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	snap, err := store.RemoveItem(id)
	if err != nil {
		return err
	}

	r.writePlain("Cart: %d items, %s\n", snap.Count, formatter.Amount(r.config.Store.Currency, snap.Total))
	return nil
}

// CartUpdate sets the quantity of a cart line. Zero removes the line.
func (r *Runner) CartUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	quantity := cmd.Int("quantity")

	if id == "" {
		return fmt.Errorf("%w: product id", shared.ErrMissingArgument)
	}

	store, closeStore, err := r.openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	snap, err := store.UpdateQuantity(id, quantity)
	if err != nil {
		return err
	}

	r.writePlain("Cart: %d items, %s\n", snap.Count, formatter.Amount(r.config.Store.Currency, snap.Total))
	return nil
}

// CartClear removes every line from the cart.
func (r *Runner) CartClear(ctx context.Context, cmd *cli.Command) error {
	store, closeStore, err := r.openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	if _, err := store.Clear(); err != nil {
		return err
	}

	r.writePlain("✓ Cart cleared\n")
	return nil
}

// CartOrder builds the WhatsApp order link for a product.
func (r *Runner) CartOrder(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	open := cmd.Bool("open")

	if id == "" {
		return fmt.Errorf("%w: product id", shared.ErrMissingArgument)
	}

	product, err := r.catalog.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch product: %w", err)
	}

	if open {
		store, closeStore, err := r.openCart()
		if err != nil {
			return err
		}
		defer closeStore()

		link, err := r.shopEngine(store).OrderViaWhatsApp(*product)
		if err != nil {
			return err
		}
		r.writePlain("✓ Opened %s\n", link)
		return nil
	}

	link, err := services.OrderLink(r.config.Store.WhatsAppPhone, r.config.Store.Currency, *product)
	if err != nil {
		return err
	}
	r.writePlain("%s\n", link)
	return nil
}
