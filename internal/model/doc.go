package model

// Package model defines the sample content entities shown by the app: groups
// and the items they contain. Every property setter notifies bound views, and
// each group keeps a bounded TopItems preview of its items for the hub grid.
