// Package tasks orchestrates storefront operations between the API clients and the local cart.
//
// # Core Operations
//
// The [ShopEngine] struct exposes the operations shared by the CLI and TUI:
//
//  1. Browsing: [ShopEngine.Browse], [ShopEngine.Search], [ShopEngine.View]
//     - Thin wrappers over the catalog client that translate transport
//     failures into user-facing toasts and degraded (empty) results
//
//  2. Cart: [ShopEngine.AddToCart], [ShopEngine.AddToCartByID], [ShopEngine.CompleteOrder]
//     - The stock-exhausted check lives here: an out-of-stock product is
//     rejected with a toast before the cart store is ever touched
//
//  3. Ordering: [ShopEngine.OrderViaWhatsApp]
//     - Builds the wa.me deep link for a product and opens it in the
//     system browser
//
//  4. Admin: [ShopEngine.SubmitProductEdit]
//     - Validates the product form, then submits the multipart update;
//     a rejected form causes no network call
//
//  5. Export: [ShopEngine.ExportCatalog]
//     - Rate-limited worker pool writing per-product files plus a
//     manifest summarizing the run
//
// # Progress Reporting
//
// Long-running operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Notifications
//
// The [Notifier] interface receives fire-and-forget success/error toasts.
// [NopNotifier] discards them; [LogNotifier] routes them to a logger; the
// TUI installs its own implementation for on-screen toasts.
package tasks
