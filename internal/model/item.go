package model

import "github.com/ytget/gardening-directions/internal/observable"

// Default tile spans
const (
	DefaultRowSpan = 1
	DefaultColSpan = 1
)

// Item is a single entry of a group
type Item struct {
	Common

	content string
	rowSpan int
	colSpan int
	group   *Group
}

// ItemData carries the constructor arguments of an Item
type ItemData struct {
	UniqueID    string
	Title       string
	Subtitle    string
	ImagePath   string
	Description string
	Content     string
	ColSpan     int
	RowSpan     int
}

// NewItem creates an item belonging to group (which may be nil).
// Non-positive spans fall back to the defaults.
func NewItem(data ItemData, group *Group, loader ImageLoader) *Item {
	it := &Item{
		content: data.Content,
		rowSpan: data.RowSpan,
		colSpan: data.ColSpan,
		group:   group,
	}
	if it.rowSpan <= 0 {
		it.rowSpan = DefaultRowSpan
	}
	if it.colSpan <= 0 {
		it.colSpan = DefaultColSpan
	}
	it.setup(data.UniqueID, data.Title, data.Subtitle, data.ImagePath, data.Description, loader)
	return it
}

// Content returns the long-form body text
func (it *Item) Content() string { return it.content }

// SetContent sets the body text
func (it *Item) SetContent(v string) {
	observable.SetProperty(&it.Bindable, &it.content, v, PropContent)
}

// RowSpan returns the number of grid rows the tile spans
func (it *Item) RowSpan() int { return it.rowSpan }

// SetRowSpan sets the row span
func (it *Item) SetRowSpan(v int) { observable.SetProperty(&it.Bindable, &it.rowSpan, v, PropRowSpan) }

// ColSpan returns the number of grid columns the tile spans
func (it *Item) ColSpan() int { return it.colSpan }

// SetColSpan sets the column span
func (it *Item) SetColSpan(v int) { observable.SetProperty(&it.Bindable, &it.colSpan, v, PropColSpan) }

// Group returns the owning group
func (it *Item) Group() *Group { return it.group }

// SetGroup sets the owning group
func (it *Item) SetGroup(g *Group) { observable.SetProperty(&it.Bindable, &it.group, g, PropGroup) }
