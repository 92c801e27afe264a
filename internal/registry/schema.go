package registry

// document is the YAML layout of a sample content file
type document struct {
	Groups []groupDoc `yaml:"groups"`
}

type groupDoc struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Subtitle    string    `yaml:"subtitle,omitempty"`
	Image       string    `yaml:"image,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Items       []itemDoc `yaml:"items,omitempty"`
}

type itemDoc struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle,omitempty"`
	Image       string `yaml:"image,omitempty"`
	Description string `yaml:"description,omitempty"`
	Content     string `yaml:"content,omitempty"`
	ColSpan     int    `yaml:"colSpan,omitempty"`
	RowSpan     int    `yaml:"rowSpan,omitempty"`
}
