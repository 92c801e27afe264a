package model

import "testing"

func TestNewItem_DefaultSpans(t *testing.T) {
	tests := []struct {
		colSpan, rowSpan         int
		expectedCol, expectedRow int
	}{
		{79, 49, 79, 49},
		{0, 0, DefaultColSpan, DefaultRowSpan},
		{-3, 2, DefaultColSpan, 2},
	}

	for _, test := range tests {
		it := NewItem(ItemData{ColSpan: test.colSpan, RowSpan: test.rowSpan}, nil, nil)
		if it.ColSpan() != test.expectedCol || it.RowSpan() != test.expectedRow {
			t.Errorf("NewItem(col=%d,row=%d) spans = (%d,%d), expected (%d,%d)",
				test.colSpan, test.rowSpan, it.ColSpan(), it.RowSpan(), test.expectedCol, test.expectedRow)
		}
	}
}

func TestItem_SettersNotifyOnlyOnChange(t *testing.T) {
	g := NewGroup(GroupData{UniqueID: "Group-1"}, nil)
	it := NewItem(ItemData{UniqueID: "Item-1", Title: "Gardening", Content: "body", ColSpan: 79, RowSpan: 49}, g, nil)

	var changed []string
	it.OnPropertyChanged(func(name string) { changed = append(changed, name) })

	it.SetTitle("Gardening")
	it.SetContent("body")
	it.SetColSpan(79)
	it.SetGroup(g)

	if len(changed) != 0 {
		t.Fatalf("Expected no notifications for equal writes, got %v", changed)
	}

	it.SetUniqueID("Item-2")
	it.SetTitle("History")
	it.SetSubtitle("History")
	it.SetDescription("desc")
	it.SetContent("new body")
	it.SetRowSpan(53)
	it.SetColSpan(53)
	it.SetGroup(nil)

	expected := []string{PropUniqueID, PropTitle, PropSubtitle, PropDescription, PropContent, PropRowSpan, PropColSpan, PropGroup}
	if len(changed) != len(expected) {
		t.Fatalf("Expected %d notifications, got %v", len(expected), changed)
	}
	for i, name := range expected {
		if changed[i] != name {
			t.Errorf("Notification %d: expected %s, got %s", i, name, changed[i])
		}
	}
	if it.Group() != nil {
		t.Error("Expected group to be cleared")
	}
}
