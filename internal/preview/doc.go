// Package preview keeps a capacity-bounded prefix of an observable list in
// sync with it. A Window mirrors the first Capacity elements of its backing
// list and updates incrementally from the list's change notifications, so a
// grid can bind to a small, stable collection while the full list grows.
package preview
