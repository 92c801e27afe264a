package model

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/ytget/gardening-directions/internal/observable"
)

// Property names reported through OnPropertyChanged
const (
	PropUniqueID    = "UniqueID"
	PropTitle       = "Title"
	PropSubtitle    = "Subtitle"
	PropDescription = "Description"
	PropImage       = "Image"
	PropContent     = "Content"
	PropRowSpan     = "RowSpan"
	PropColSpan     = "ColSpan"
	PropGroup       = "Group"
)

// ImageLoader resolves an asset path such as "Assets/10.jpg" into a resource
type ImageLoader func(path string) (fyne.Resource, error)

// Common holds the properties shared by Group and Item
type Common struct {
	observable.Bindable

	uniqueID    string
	title       string
	subtitle    string
	description string

	imagePath string
	image     *observable.Lazy[fyne.Resource]
	loader    ImageLoader
}

// setup fills c in place; the lazy image keeps a pointer to c
func (c *Common) setup(uniqueID, title, subtitle, imagePath, description string, loader ImageLoader) {
	c.uniqueID = uniqueID
	c.title = title
	c.subtitle = subtitle
	c.description = description
	c.imagePath = imagePath
	c.loader = loader
	c.image = observable.NewLazy(c.loadImage)
}

// UniqueID returns the identifier used for lookups
func (c *Common) UniqueID() string { return c.uniqueID }

// SetUniqueID sets the identifier
func (c *Common) SetUniqueID(v string) {
	observable.SetProperty(&c.Bindable, &c.uniqueID, v, PropUniqueID)
}

// Title returns the title
func (c *Common) Title() string { return c.title }

// SetTitle sets the title
func (c *Common) SetTitle(v string) { observable.SetProperty(&c.Bindable, &c.title, v, PropTitle) }

// Subtitle returns the subtitle
func (c *Common) Subtitle() string { return c.subtitle }

// SetSubtitle sets the subtitle
func (c *Common) SetSubtitle(v string) {
	observable.SetProperty(&c.Bindable, &c.subtitle, v, PropSubtitle)
}

// Description returns the description
func (c *Common) Description() string { return c.description }

// SetDescription sets the description
func (c *Common) SetDescription(v string) {
	observable.SetProperty(&c.Bindable, &c.description, v, PropDescription)
}

// ImagePath returns the asset path the image is resolved from, or "" when the
// image was assigned directly
func (c *Common) ImagePath() string { return c.imagePath }

// Image returns the image, resolving it from the image path on first use.
// It returns nil when there is no path, no loader, or loading failed; a failed
// load is retried on the next call.
func (c *Common) Image() fyne.Resource {
	res, _ := c.image.Get()
	return res
}

// SetImage assigns a resolved image directly and forgets the image path
func (c *Common) SetImage(res fyne.Resource) {
	c.imagePath = ""
	current, cached := c.image.Peek()
	if cached && current == res {
		return
	}
	c.image.Set(res)
	c.NotifyPropertyChanged(PropImage)
}

// SetImagePath points the image at a new asset path. The cached image is
// dropped and bound views are always told to reload it.
func (c *Common) SetImagePath(path string) {
	c.image.Invalidate()
	c.imagePath = path
	c.NotifyPropertyChanged(PropImage)
}

// String returns the title
func (c *Common) String() string {
	return c.title
}

func (c *Common) loadImage() (fyne.Resource, bool) {
	if c.imagePath == "" || c.loader == nil {
		return nil, false
	}
	res, err := c.loader(c.imagePath)
	if err != nil {
		slog.Warn("failed to load image", "id", c.uniqueID, "path", c.imagePath, "error", err)
		return nil, false
	}
	return res, true
}
