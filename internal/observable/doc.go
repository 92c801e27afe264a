// Package observable provides the change-notifying building blocks the data
// model is made of: an ordered List that reports insert, remove, move, replace
// and reset changes, a Bindable base for per-property notifications, and a
// Lazy memoized value.
//
// Everything here is single-threaded. Listeners run synchronously, before the
// mutating call returns.
package observable
