package cli

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ytget/gardening-directions/internal/model"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Lookup miss
	ExitCommandError = 2 // Bad flags or unreadable sample data
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// GroupView is the printable form of a group.
type GroupView struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Subtitle    string    `yaml:"subtitle,omitempty"`
	Image       string    `yaml:"image,omitempty"`
	Description string    `yaml:"description,omitempty"`
	ItemCount   int       `yaml:"itemCount"`
	TopItems    []ItemRef `yaml:"topItems,omitempty"`
	Items       []ItemRef `yaml:"items,omitempty"`
}

// ItemRef identifies an item inside a group listing.
type ItemRef struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// ItemView is the printable form of an item.
type ItemView struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle,omitempty"`
	Group       string `yaml:"group,omitempty"`
	Image       string `yaml:"image,omitempty"`
	ColSpan     int    `yaml:"colSpan"`
	RowSpan     int    `yaml:"rowSpan"`
	Description string `yaml:"description,omitempty"`
	Content     string `yaml:"content,omitempty"`
}

func refs(items []*model.Item) []ItemRef {
	out := make([]ItemRef, 0, len(items))
	for _, it := range items {
		out = append(out, ItemRef{ID: it.UniqueID(), Title: it.Title()})
	}
	return out
}

// newGroupView summarizes g with its preview; withItems adds every item.
func newGroupView(g *model.Group, withItems bool) GroupView {
	v := GroupView{
		ID:          g.UniqueID(),
		Title:       g.Title(),
		Subtitle:    g.Subtitle(),
		Image:       g.ImagePath(),
		Description: g.Description(),
		ItemCount:   g.ItemCount(),
	}
	if withItems {
		v.Items = refs(g.Items().Items())
	} else {
		v.TopItems = refs(g.TopItems().Items())
	}
	return v
}

func newItemView(it *model.Item) ItemView {
	v := ItemView{
		ID:          it.UniqueID(),
		Title:       it.Title(),
		Subtitle:    it.Subtitle(),
		Image:       it.ImagePath(),
		ColSpan:     it.ColSpan(),
		RowSpan:     it.RowSpan(),
		Description: it.Description(),
		Content:     it.Content(),
	}
	if g := it.Group(); g != nil {
		v.Group = g.UniqueID()
	}
	return v
}

// OutputFormatter writes views as text or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Write outputs v, using text for the text format.
func (f *OutputFormatter) Write(v any, text func(w io.Writer)) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	}
	text(f.Writer)
	return nil
}

// field prints one aligned "Label: value" line; empty values are skipped.
func field(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%-13s%s\n", label+":", value)
}

func writeRefs(w io.Writer, items []ItemRef) {
	for _, r := range items {
		fmt.Fprintf(w, "  %s  %s\n", r.ID, r.Title)
	}
}

func (v GroupView) writeText(w io.Writer) {
	field(w, "ID", v.ID)
	field(w, "Title", v.Title)
	field(w, "Subtitle", v.Subtitle)
	field(w, "Image", v.Image)
	field(w, "Description", v.Description)
	field(w, "Items", fmt.Sprint(v.ItemCount))
	writeRefs(w, v.Items)
}

func (v ItemView) writeText(w io.Writer) {
	field(w, "ID", v.ID)
	field(w, "Title", v.Title)
	field(w, "Subtitle", v.Subtitle)
	field(w, "Group", v.Group)
	field(w, "Image", v.Image)
	field(w, "Size", fmt.Sprintf("%dx%d", v.ColSpan, v.RowSpan))
	field(w, "Description", v.Description)
	field(w, "Content", v.Content)
}
