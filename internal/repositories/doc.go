// Package repositories provides the client-side persistence layer.
//
// The storefront's only durable resource is a small SQLite-backed key/value
// table mirroring browser local storage. [KVRepository] owns raw byte access
// to that table; [CartStorage] adapts it to the cart store's contract,
// serializing lines to JSON under a fixed key and decoding corrupt payloads
// to an empty cart instead of failing.
package repositories
