package registry

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ytget/gardening-directions/internal/model"
	"github.com/ytget/gardening-directions/internal/observable"
)

// AllGroupsID is the only collection name Groups accepts
const AllGroupsID = "AllGroups"

// GeneratedItemPrefix prefixes ids generated for items that have none
const GeneratedItemPrefix = "Item-"

// ErrUnsupportedCollection is returned by Groups for any name but AllGroupsID
var ErrUnsupportedCollection = errors.New("registry: only 'AllGroups' is supported as a collection of groups")

//go:embed sample.yaml
var sampleYAML []byte

// Source owns a list of groups
type Source struct {
	allGroups *observable.List[*model.Group]
}

// NewSource creates an empty source
func NewSource() *Source {
	return &Source{allGroups: observable.NewList[*model.Group]()}
}

// Load decodes a sample content document. Images are resolved through loader.
func Load(r io.Reader, loader model.ImageLoader) (*Source, error) {
	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewSource(), nil
		}
		return nil, fmt.Errorf("failed to decode sample data: %w", err)
	}

	s := NewSource()
	for i, gd := range doc.Groups {
		if gd.ID == "" {
			return nil, fmt.Errorf("group %d has no id", i)
		}
		group := model.NewGroup(model.GroupData{
			UniqueID:    gd.ID,
			Title:       gd.Title,
			Subtitle:    gd.Subtitle,
			ImagePath:   gd.Image,
			Description: gd.Description,
		}, loader)

		for _, itd := range gd.Items {
			if itd.ID == "" {
				itd.ID = newItemID()
			}
			group.NewItem(model.ItemData{
				UniqueID:    itd.ID,
				Title:       itd.Title,
				Subtitle:    itd.Subtitle,
				ImagePath:   itd.Image,
				Description: itd.Description,
				Content:     itd.Content,
				ColSpan:     itd.ColSpan,
				RowSpan:     itd.RowSpan,
			})
		}
		s.allGroups.Append(group)
	}
	return s, nil
}

// LoadFile decodes the sample content document at path
func LoadFile(path string, loader model.ImageLoader) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample data: %w", err)
	}
	defer f.Close()

	s, err := Load(f, loader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadEmbedded decodes the sample content compiled into the binary
func LoadEmbedded(loader model.ImageLoader) (*Source, error) {
	return Load(bytes.NewReader(sampleYAML), loader)
}

// AllGroups returns the mutable list of every group
func (s *Source) AllGroups() *observable.List[*model.Group] {
	return s.allGroups
}

// Groups returns every group for AllGroupsID and ErrUnsupportedCollection
// for any other name
func (s *Source) Groups(uniqueID string) ([]*model.Group, error) {
	if uniqueID != AllGroupsID {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCollection, uniqueID)
	}
	return s.allGroups.Items(), nil
}

// Group returns the group with uniqueID. A missing or ambiguous id is a miss.
func (s *Source) Group(uniqueID string) (*model.Group, bool) {
	var match *model.Group
	matches := 0
	for _, g := range s.allGroups.Items() {
		if g.UniqueID() == uniqueID {
			match = g
			matches++
		}
	}
	if matches != 1 {
		return nil, false
	}
	return match, true
}

// Item returns the item with uniqueID across all groups. A missing or
// ambiguous id is a miss.
func (s *Source) Item(uniqueID string) (*model.Item, bool) {
	var match *model.Item
	matches := 0
	for _, g := range s.allGroups.Items() {
		for _, it := range g.Items().Items() {
			if it.UniqueID() == uniqueID {
				match = it
				matches++
			}
		}
	}
	if matches != 1 {
		return nil, false
	}
	return match, true
}

func newItemID() string {
	return GeneratedItemPrefix + uuid.NewString()
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
	defaultLoader model.ImageLoader
)

// SetDefaultImageLoader sets the loader Default uses. It only has an effect
// before the first call to Default.
func SetDefaultImageLoader(loader model.ImageLoader) {
	defaultLoader = loader
}

// Default returns the process-wide source built from the embedded sample
// content on first use
func Default() *Source {
	defaultOnce.Do(func() {
		s, err := LoadEmbedded(defaultLoader)
		if err != nil {
			// The embedded document is part of the build.
			panic(err)
		}
		defaultSource = s
	})
	return defaultSource
}

// GetGroups returns Default().Groups(uniqueID)
func GetGroups(uniqueID string) ([]*model.Group, error) {
	return Default().Groups(uniqueID)
}

// GetGroup returns Default().Group(uniqueID)
func GetGroup(uniqueID string) (*model.Group, bool) {
	return Default().Group(uniqueID)
}

// GetItem returns Default().Item(uniqueID)
func GetItem(uniqueID string) (*model.Item, bool) {
	return Default().Item(uniqueID)
}
