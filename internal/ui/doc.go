// Package ui implements an interactive terminal storefront using bubbletea's Elm architecture.
//
// The TUI provides a multi-view shopping workflow:
//  1. [ProductListView] : Browse and search the product catalog
//  2. [ProductDetailView] : Inspect a product, add it to the cart, or order via WhatsApp
//  3. [CartView] : Review cart lines, adjust quantities, clear the cart
//  4. [EditView] : Admin product editor with an ordered specification list
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Catalog fetches are tagged with a request token so responses that arrive
// after the user has already navigated elsewhere are dropped instead of
// clobbering newer state. Toasts from the engine flow through a channel,
// mirroring how progress updates are delivered during exports.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
