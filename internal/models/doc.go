// Package models defines domain entities for the Delight Vision Sounds storefront client.
//
// The package contains two categories of types:
//
// 1. Catalog Data Transfer Objects: shapes returned by the upstream store API
//   - [Product] : Audio-equipment listing with price, stock and specifications
//   - [Category] : Product grouping, optionally nested inside a product
//   - [Specification] : One ordered free-text key/value attribute of a product
//
// 2. Cart entities: client-owned state persisted locally between sessions
//   - [CartLine] : One product-plus-quantity entry within the cart
//
// Optional upstream fields (image, category) are modeled explicitly rather than
// relying on zero values meaning absence; see [Product.CategoryName].
package models
