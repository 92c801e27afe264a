package model

import (
	"github.com/ytget/gardening-directions/internal/observable"
	"github.com/ytget/gardening-directions/internal/preview"
)

// Group is a titled collection of items.
//
// Items holds every item. TopItems mirrors the first preview.Capacity of them
// for hub views.
type Group struct {
	Common

	items    *observable.List[*Item]
	topItems *preview.Window[*Item]
}

// GroupData carries the constructor arguments of a Group
type GroupData struct {
	UniqueID    string
	Title       string
	Subtitle    string
	ImagePath   string
	Description string
}

// NewGroup creates an empty group
func NewGroup(data GroupData, loader ImageLoader) *Group {
	g := &Group{
		items: observable.NewList[*Item](),
	}
	g.setup(data.UniqueID, data.Title, data.Subtitle, data.ImagePath, data.Description, loader)
	g.topItems = preview.New(g.items)
	return g
}

// Items returns the full, mutable item list
func (g *Group) Items() *observable.List[*Item] {
	return g.items
}

// TopItems returns the read-only preview of the leading items
func (g *Group) TopItems() observable.Reader[*Item] {
	return g.topItems
}

// AddItem appends item and makes g its group
func (g *Group) AddItem(item *Item) {
	item.SetGroup(g)
	g.items.Append(item)
}

// NewItem creates an item owned by g and appends it
func (g *Group) NewItem(data ItemData) *Item {
	item := NewItem(data, g, g.loader)
	g.items.Append(item)
	return item
}

// ItemCount returns the number of items
func (g *Group) ItemCount() int {
	return g.items.Len()
}
