package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/JAX838/delight-vision-sounds/internal/cart"
	"github.com/JAX838/delight-vision-sounds/internal/forms"
	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/services"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"github.com/charmbracelet/log"
)

// Notifier receives fire-and-forget success/error toasts after operations.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Success(message string) { n.Logger.Info(message) }
func (n LogNotifier) Error(message string)   { n.Logger.Error(message) }

// ShopEngine coordinates storefront operations for the CLI and TUI.
type ShopEngine struct {
	catalog  services.Catalog
	admin    *services.AdminService
	cart     *cart.Store
	notify   Notifier
	phone    string
	currency string
	openLink func(string) error
}

// EngineOpts contains configuration options for creating a ShopEngine.
type EngineOpts struct {
	Catalog  services.Catalog
	Admin    *services.AdminService
	Cart     *cart.Store
	Notify   Notifier
	Phone    string
	Currency string
	OpenLink func(string) error
}

// NewShopEngine creates a new ShopEngine with the provided dependencies.
func NewShopEngine(opts EngineOpts) *ShopEngine {
	if opts.Notify == nil {
		opts.Notify = NopNotifier{}
	}
	if opts.OpenLink == nil {
		opts.OpenLink = shared.OpenBrowser
	}

	return &ShopEngine{
		catalog:  opts.Catalog,
		admin:    opts.Admin,
		cart:     opts.Cart,
		notify:   opts.Notify,
		phone:    opts.Phone,
		currency: opts.Currency,
		openLink: opts.OpenLink,
	}
}

// SetNotifier replaces the engine's notification sink. The TUI installs its
// own implementation so toasts render on screen instead of in the log.
func (e *ShopEngine) SetNotifier(n Notifier) {
	if n == nil {
		n = NopNotifier{}
	}
	e.notify = n
}

// Cart returns the engine's cart store.
func (e *ShopEngine) Cart() *cart.Store {
	return e.cart
}

// Currency returns the configured display currency.
func (e *ShopEngine) Currency() string {
	return e.currency
}

// Browse retrieves the full catalog. A transport failure degrades to an
// empty result with an error toast; the caller renders zero products.
func (e *ShopEngine) Browse(ctx context.Context) ([]models.Product, error) {
	products, err := e.catalog.ListProducts(ctx)
	if err != nil {
		e.notify.Error("Failed to load products")
		return nil, err
	}
	return products, nil
}

// Search retrieves products matching the query.
func (e *ShopEngine) Search(ctx context.Context, query string) ([]models.Product, error) {
	products, err := e.catalog.SearchProducts(ctx, query)
	if err != nil {
		e.notify.Error("Failed to search products")
		return nil, err
	}
	return products, nil
}

// View retrieves one product for the detail view.
func (e *ShopEngine) View(ctx context.Context, id string) (*models.Product, error) {
	product, err := e.catalog.GetProduct(ctx, id)
	if errors.Is(err, shared.ErrProductNotFound) {
		return nil, err
	}
	if err != nil {
		e.notify.Error("Failed to load product")
		return nil, err
	}
	return product, nil
}

// AddToCart adds an already-fetched product to the cart.
//
// The stock-exhausted check is this view-layer policy: the cart store never
// receives the call for an out-of-stock product.
func (e *ShopEngine) AddToCart(product models.Product, quantity int) (cart.Snapshot, error) {
	if !product.InStock() {
		e.notify.Error("This product is out of stock")
		return e.cart.Snapshot(), fmt.Errorf("%w: %s", shared.ErrOutOfStock, product.ID)
	}

	snap, err := e.cart.AddItem(product, quantity)
	if err != nil {
		e.notify.Error("Failed to add to cart")
		return snap, err
	}

	e.notify.Success(fmt.Sprintf("%s added to cart", product.Name))
	return snap, nil
}

// AddToCartByID fetches the product and adds it to the cart.
func (e *ShopEngine) AddToCartByID(ctx context.Context, id string, quantity int) (cart.Snapshot, error) {
	product, err := e.View(ctx, id)
	if err != nil {
		return e.cart.Snapshot(), err
	}
	return e.AddToCart(*product, quantity)
}

// OrderViaWhatsApp builds the order deep link for a product and opens it in
// the system browser. Returns the link so callers can also display it.
func (e *ShopEngine) OrderViaWhatsApp(product models.Product) (string, error) {
	link, err := services.OrderLink(e.phone, e.currency, product)
	if err != nil {
		e.notify.Error("WhatsApp ordering is not configured")
		return "", err
	}

	if err := e.openLink(link); err != nil {
		// The link is still usable manually.
		e.notify.Error("Could not open browser")
		return link, err
	}

	return link, nil
}

// CompleteOrder clears the cart after a successful external order.
func (e *ShopEngine) CompleteOrder() error {
	if _, err := e.cart.Clear(); err != nil {
		return err
	}
	e.notify.Success("Order placed, cart cleared")
	return nil
}

// SubmitProductEdit validates the form and submits the product update.
// A form that fails validation causes no network call at all.
func (e *ShopEngine) SubmitProductEdit(ctx context.Context, id string, form *forms.ProductForm) error {
	update, err := form.Update()
	if errors.Is(err, shared.ErrValidation) {
		e.notify.Error("Name and price are required.")
		return err
	}
	if err != nil {
		return err
	}

	if err := e.admin.UpdateProduct(ctx, id, update); err != nil {
		e.notify.Error("Update failed.")
		return err
	}

	e.notify.Success("Product updated successfully!")
	return nil
}
