package model

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
)

func countingLoader(calls *int) ImageLoader {
	return func(path string) (fyne.Resource, error) {
		*calls++
		return fyne.NewStaticResource(path, []byte(path)), nil
	}
}

func TestCommon_ImageResolvesLazilyAndCaches(t *testing.T) {
	calls := 0
	g := NewGroup(GroupData{UniqueID: "Group-1", ImagePath: "Assets/10.jpg"}, countingLoader(&calls))

	if calls != 0 {
		t.Fatalf("Expected no load before first read, got %d", calls)
	}

	first := g.Image()
	second := g.Image()

	if first == nil || first.Name() != "Assets/10.jpg" {
		t.Fatalf("Image() = %v, expected resource named Assets/10.jpg", first)
	}
	if first != second {
		t.Error("Expected cached resource on second read")
	}
	if calls != 1 {
		t.Errorf("Expected 1 load, got %d", calls)
	}
}

func TestCommon_SetImagePathInvalidatesAndNotifies(t *testing.T) {
	calls := 0
	g := NewGroup(GroupData{ImagePath: "Assets/10.jpg"}, countingLoader(&calls))
	g.Image()

	var changed []string
	g.OnPropertyChanged(func(name string) { changed = append(changed, name) })

	g.SetImagePath("Assets/20.jpg")
	g.SetImagePath("Assets/20.jpg")

	if len(changed) != 2 || changed[0] != PropImage {
		t.Errorf("Expected two Image notifications, got %v", changed)
	}
	if got := g.Image().Name(); got != "Assets/20.jpg" {
		t.Errorf("Image().Name() = %s, expected Assets/20.jpg", got)
	}
	if calls != 2 {
		t.Errorf("Expected 2 loads, got %d", calls)
	}
}

func TestCommon_SetImageClearsPath(t *testing.T) {
	calls := 0
	g := NewGroup(GroupData{ImagePath: "Assets/10.jpg"}, countingLoader(&calls))
	res := fyne.NewStaticResource("direct.png", nil)

	notified := 0
	g.OnPropertyChanged(func(string) { notified++ })

	g.SetImage(res)
	g.SetImage(res)

	if g.ImagePath() != "" {
		t.Errorf("Expected empty image path, got %s", g.ImagePath())
	}
	if g.Image() != res {
		t.Error("Expected directly assigned resource")
	}
	if notified != 1 {
		t.Errorf("Expected 1 notification for repeated SetImage, got %d", notified)
	}
	if calls != 0 {
		t.Errorf("Expected loader not to run, got %d calls", calls)
	}
}

func TestCommon_ImageLoadFailureIsRetried(t *testing.T) {
	calls := 0
	failing := true
	loader := func(path string) (fyne.Resource, error) {
		calls++
		if failing {
			return nil, errors.New("missing")
		}
		return fyne.NewStaticResource(path, nil), nil
	}
	it := NewItem(ItemData{ImagePath: "Assets/11.jpg"}, nil, loader)

	if it.Image() != nil {
		t.Error("Expected nil image on failed load")
	}

	failing = false
	if it.Image() == nil {
		t.Error("Expected image after loader recovered")
	}
	if calls != 2 {
		t.Errorf("Expected 2 loads, got %d", calls)
	}
}

func TestCommon_NoPathOrLoader(t *testing.T) {
	if NewGroup(GroupData{}, countingLoader(new(int))).Image() != nil {
		t.Error("Expected nil image without a path")
	}
	if NewGroup(GroupData{ImagePath: "Assets/1.jpg"}, nil).Image() != nil {
		t.Error("Expected nil image without a loader")
	}
}

func TestCommon_StringReturnsTitle(t *testing.T) {
	g := NewGroup(GroupData{Title: "Gardening Art"}, nil)
	if g.String() != "Gardening Art" {
		t.Errorf("String() = %s, expected Gardening Art", g.String())
	}
}
