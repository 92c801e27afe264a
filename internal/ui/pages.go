package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gardening-directions/internal/model"
)

// page is one screen of the navigation stack
type page struct {
	content fyne.CanvasObject
	close   func()
}

// newPageHeader builds the back button and title row of a detail page
func newPageHeader(title string, localization *Localization, onBack func()) fyne.CanvasObject {
	back := widget.NewButton(IconBack+" "+localization.GetText(KeyBack), onBack)
	back.Importance = widget.LowImportance

	heading := widget.NewRichText(&widget.TextSegment{Style: widget.RichTextStyleHeading, Text: title})

	return container.NewBorder(nil, nil, back, nil, heading)
}

// newGroupPage shows every item of group
func newGroupPage(group *model.Group, localization *Localization, onBack func(), onOpenItem func(*model.Item)) *page {
	section := NewGroupSection(group, group.Items(), localization, false)
	section.SetCallbacks(nil, onOpenItem)

	description := widget.NewLabel(group.Description())
	description.Wrapping = fyne.TextWrapWord

	top := container.NewVBox(newPageHeader(group.Title(), localization, onBack), description)

	return &page{
		content: container.NewBorder(top, nil, nil, nil, section.Container()),
		close:   section.Close,
	}
}

// newItemPage shows the details of item. onOpenImage is nil when images
// cannot be opened externally.
func newItemPage(item *model.Item, localization *Localization, onBack func(), onOpenImage func(*model.Item)) *page {
	subtitle := widget.NewLabelWithStyle(item.Subtitle(), fyne.TextAlignLeading, fyne.TextStyle{Italic: true})

	var picture fyne.CanvasObject
	if res := item.Image(); res != nil {
		img := canvas.NewImageFromResource(res)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(DetailImageWidth, DetailImageHeight))
		picture = img
	} else {
		picture = widget.NewLabel(IconImage + " " + localization.GetText(KeyNoImage))
	}

	description := widget.NewLabel(item.Description())
	description.Wrapping = fyne.TextWrapWord

	content := widget.NewLabel(item.Content())
	content.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(subtitle, picture, description, widget.NewSeparator(), content)

	if onOpenImage != nil && item.ImagePath() != "" {
		openBtn := widget.NewButton(localization.GetText(KeyOpenImage), func() { onOpenImage(item) })
		body.Add(openBtn)
	}

	return &page{
		content: container.NewBorder(newPageHeader(item.Title(), localization, onBack), nil, nil, nil, container.NewVScroll(body)),
	}
}
