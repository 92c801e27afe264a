package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gardening-directions/internal/model"
	"github.com/ytget/gardening-directions/internal/observable"
)

// ItemTile renders one item of a grid: image, title and subtitle. It follows
// property changes of the item it shows.
type ItemTile struct {
	widget.BaseWidget

	item *model.Item
	sub  observable.Subscription

	image         *canvas.Image
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
}

// NewItemTile creates a tile; item may be nil for grid templates
func NewItemTile(item *model.Item) *ItemTile {
	t := &ItemTile{
		image:         canvas.NewImageFromResource(nil),
		titleLabel:    widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		subtitleLabel: widget.NewLabel(""),
	}
	t.image.FillMode = canvas.ImageFillContain
	t.image.SetMinSize(fyne.NewSize(TileWidth, TileImageHeight))
	t.titleLabel.Truncation = fyne.TextTruncateEllipsis
	t.subtitleLabel.Truncation = fyne.TextTruncateEllipsis

	t.ExtendBaseWidget(t)
	t.SetItem(item)
	return t
}

// Item returns the item currently shown
func (t *ItemTile) Item() *model.Item {
	return t.item
}

// SetItem switches the tile to item, moving its property subscription along
func (t *ItemTile) SetItem(item *model.Item) {
	if t.item == item && item != nil {
		return
	}
	if t.sub != nil {
		t.sub.Cancel()
		t.sub = nil
	}

	t.item = item
	if item != nil {
		t.sub = item.OnPropertyChanged(func(string) { t.updateFromItem() })
	}
	t.updateFromItem()
}

// Close detaches the tile from its item
func (t *ItemTile) Close() {
	if t.sub != nil {
		t.sub.Cancel()
		t.sub = nil
	}
	t.item = nil
}

// updateFromItem copies item properties into the widgets
func (t *ItemTile) updateFromItem() {
	if t.item == nil {
		t.titleLabel.SetText("")
		t.subtitleLabel.SetText("")
		t.image.Resource = nil
		t.image.Refresh()
		return
	}

	t.titleLabel.SetText(t.item.Title())
	t.subtitleLabel.SetText(t.item.Subtitle())

	res := t.item.Image()
	if res == nil {
		res = theme.FileImageIcon()
	}
	t.image.Resource = res
	t.image.Refresh()
}

// CreateRenderer implements fyne.Widget
func (t *ItemTile) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, container.NewVBox(t.titleLabel, t.subtitleLabel), nil, nil, t.image)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps every tile the same size so grids line up
func (t *ItemTile) MinSize() fyne.Size {
	return fyne.NewSize(TileWidth, TileHeight)
}
