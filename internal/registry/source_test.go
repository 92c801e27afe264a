package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/gardening-directions/internal/model"
)

const fixture = `
groups:
  - id: G1
    title: First
    items:
      - id: A
        title: Alpha
        colSpan: 79
        rowSpan: 49
      - id: Dup
        title: Duplicate one
  - id: G2
    title: Second
    items:
      - id: Dup
        title: Duplicate two
      - title: No id
  - id: G2
    title: Second again
`

func loadFixture(t *testing.T) *Source {
	t.Helper()
	s, err := Load(strings.NewReader(fixture), nil)
	require.NoError(t, err)
	return s
}

func TestLoad_BuildsGroupsAndItems(t *testing.T) {
	s := loadFixture(t)

	groups, err := s.Groups(AllGroupsID)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "First", groups[0].Title())
	require.Equal(t, 2, groups[0].ItemCount())

	alpha := groups[0].Items().At(0)
	assert.Equal(t, 79, alpha.ColSpan())
	assert.Equal(t, 49, alpha.RowSpan())
	assert.Same(t, groups[0], alpha.Group())
	assert.Equal(t, 2, groups[0].TopItems().Len())
}

func TestLoad_GeneratesMissingItemIDs(t *testing.T) {
	s := loadFixture(t)

	generated := s.AllGroups().At(1).Items().At(1)
	assert.True(t, strings.HasPrefix(generated.UniqueID(), GeneratedItemPrefix))
	assert.Len(t, generated.UniqueID(), len(GeneratedItemPrefix)+36)

	found, ok := s.Item(generated.UniqueID())
	assert.True(t, ok)
	assert.Same(t, generated, found)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "groups:\n  - id: G\n    colour: red\n"},
		{"missing group id", "groups:\n  - title: nameless\n"},
		{"malformed", "groups: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), nil)
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	s, err := Load(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.AllGroups().Len())
}

func TestSource_GroupsRejectsOtherNames(t *testing.T) {
	s := loadFixture(t)

	_, err := s.Groups("Group-1")
	assert.True(t, errors.Is(err, ErrUnsupportedCollection))
}

func TestSource_GroupLookup(t *testing.T) {
	s := loadFixture(t)

	g, ok := s.Group("G1")
	require.True(t, ok)
	assert.Equal(t, "First", g.Title())

	_, ok = s.Group("G2")
	assert.False(t, ok, "ambiguous id must miss")

	_, ok = s.Group("missing")
	assert.False(t, ok)
}

func TestSource_ItemLookup(t *testing.T) {
	s := loadFixture(t)

	it, ok := s.Item("A")
	require.True(t, ok)
	assert.Equal(t, "Alpha", it.Title())

	_, ok = s.Item("Dup")
	assert.False(t, ok, "ambiguous id must miss")

	_, ok = s.Item("missing")
	assert.False(t, ok)
}

func TestSource_LookupSeesLaterMutations(t *testing.T) {
	s := NewSource()
	g := model.NewGroup(model.GroupData{UniqueID: "Late"}, nil)
	s.AllGroups().Append(g)
	g.NewItem(model.ItemData{UniqueID: "Late-Item"})

	_, ok := s.Group("Late")
	assert.True(t, ok)
	_, ok = s.Item("Late-Item")
	assert.True(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	s, err := LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, s.AllGroups().Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_PassesImageLoader(t *testing.T) {
	var requested []string
	loader := func(path string) (fyne.Resource, error) {
		requested = append(requested, path)
		return fyne.NewStaticResource(path, nil), nil
	}
	s, err := Load(strings.NewReader("groups:\n  - id: G\n    image: Assets/1.jpg\n    items:\n      - id: I\n        image: Assets/2.jpg\n"), loader)
	require.NoError(t, err)

	g, _ := s.Group("G")
	it, _ := s.Item("I")
	require.NotNil(t, g.Image())
	require.NotNil(t, it.Image())
	assert.Equal(t, []string{"Assets/1.jpg", "Assets/2.jpg"}, requested)
}

func TestDefault_EmbeddedSampleContent(t *testing.T) {
	groups, err := GetGroups(AllGroupsID)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	g, ok := GetGroup("Group-1")
	require.True(t, ok)
	assert.Equal(t, "Gardening Art", g.Title())
	assert.Equal(t, 6, g.ItemCount())
	assert.Equal(t, 6, g.TopItems().Len())

	it, ok := GetItem("Small-Group-2-Item6")
	require.True(t, ok)
	assert.Equal(t, "Community Gardening", it.Title())
	assert.Equal(t, 53, it.ColSpan())
	assert.Equal(t, 49, it.RowSpan())

	_, err = GetGroups("Everything")
	assert.ErrorIs(t, err, ErrUnsupportedCollection)

	assert.Same(t, Default(), Default())
}

func TestDefault_EmbeddedContentKeepsParagraphs(t *testing.T) {
	it, ok := GetItem("Big-Group-1-Item3")
	require.True(t, ok)

	paragraphs := strings.Split(it.Content(), "\n\n")
	require.Len(t, paragraphs, 3)
	assert.True(t, strings.HasPrefix(paragraphs[0], "Gardening may be performed at a professional level"))
	assert.True(t, strings.HasSuffix(paragraphs[2], "emphasize desired views."))
	assert.NotContains(t, it.Description(), "\n")

	g, ok := GetGroup("Group-1")
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(g.Description(), "flower arrangement."))
}
