package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gardening-directions/internal/model"
	"github.com/ytget/gardening-directions/internal/observable"
)

// GroupSection shows a group's items in a wrapping grid. On the hub it is
// bound to the group's TopItems preview; on the group page to all Items.
type GroupSection struct {
	localization *Localization
	group        *model.Group
	items        observable.Reader[*model.Item]

	// UI components
	header    *widget.Button
	grid      *widget.GridWrap
	container *fyne.Container

	subs   []observable.Subscription
	tiles  []*ItemTile
	closed bool

	// Callbacks
	onOpenGroup func(*model.Group)
	onOpenItem  func(*model.Item)
}

// NewGroupSection creates a section for group displaying items. With
// withHeader the section starts with a button that opens the group.
func NewGroupSection(group *model.Group, items observable.Reader[*model.Item], localization *Localization, withHeader bool) *GroupSection {
	gs := &GroupSection{
		localization: localization,
		group:        group,
		items:        items,
	}

	gs.createUI(withHeader)

	gs.subs = append(gs.subs,
		items.Subscribe(func(observable.Change[*model.Item]) { gs.grid.Refresh() }),
		group.Items().Subscribe(func(observable.Change[*model.Item]) { gs.refreshHeader() }),
		group.OnPropertyChanged(func(name string) {
			if name == model.PropTitle {
				gs.refreshHeader()
			}
		}),
	)
	return gs
}

// createUI creates the header and grid
func (gs *GroupSection) createUI(withHeader bool) {
	gs.grid = widget.NewGridWrap(
		func() int {
			return gs.items.Len()
		},
		func() fyne.CanvasObject {
			tile := NewItemTile(nil)
			gs.tiles = append(gs.tiles, tile)
			return tile
		},
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			gs.updateTile(id, obj)
		},
	)
	gs.grid.OnSelected = func(id widget.GridWrapItemID) {
		gs.grid.UnselectAll()
		if id >= gs.items.Len() {
			return
		}
		if gs.onOpenItem != nil {
			gs.onOpenItem(gs.items.At(id))
		}
	}

	if !withHeader {
		gs.container = container.NewStack(gs.grid)
		return
	}

	gs.header = widget.NewButton("", func() {
		if gs.onOpenGroup != nil {
			gs.onOpenGroup(gs.group)
		}
	})
	gs.header.Alignment = widget.ButtonAlignLeading
	gs.header.Importance = widget.LowImportance
	gs.refreshHeader()

	gs.container = container.NewBorder(gs.header, nil, nil, nil, gs.grid)
}

// updateTile binds a recycled tile to the item at id
func (gs *GroupSection) updateTile(id widget.GridWrapItemID, obj fyne.CanvasObject) {
	if gs.closed {
		return
	}
	tile, ok := obj.(*ItemTile)
	if !ok {
		slog.Warn("unexpected grid cell", "type", fmt.Sprintf("%T", obj))
		return
	}
	if id >= gs.items.Len() {
		tile.SetItem(nil)
		return
	}
	tile.SetItem(gs.items.At(id))
}

// refreshHeader shows the group title and its full item count
func (gs *GroupSection) refreshHeader() {
	if gs.header == nil {
		return
	}
	count := fmt.Sprintf(gs.localization.GetText(KeyItemCount), gs.group.ItemCount())
	gs.header.SetText(gs.group.Title() + MiddleDotSeparator + count + " " + IconMore)
}

// SetCallbacks sets the navigation callbacks
func (gs *GroupSection) SetCallbacks(onOpenGroup func(*model.Group), onOpenItem func(*model.Item)) {
	gs.onOpenGroup = onOpenGroup
	gs.onOpenItem = onOpenItem
}

// Container returns the main container of the section
func (gs *GroupSection) Container() *fyne.Container {
	return gs.container
}

// Grid returns the item grid
func (gs *GroupSection) Grid() *widget.GridWrap {
	return gs.grid
}

// HeaderText returns the header caption, or "" without a header
func (gs *GroupSection) HeaderText() string {
	if gs.header == nil {
		return ""
	}
	return gs.header.Text
}

// Close detaches the section and every tile it created from the model
func (gs *GroupSection) Close() {
	gs.closed = true
	for _, sub := range gs.subs {
		sub.Cancel()
	}
	gs.subs = nil
	for _, tile := range gs.tiles {
		tile.Close()
	}
	gs.tiles = nil
}
