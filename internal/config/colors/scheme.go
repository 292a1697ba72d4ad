package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (focused input, table header, titles)
	Accent string `yaml:"accent"`

	// Semantic colors
	Success string `yaml:"success"` // Green - completed actions
	Error   string `yaml:"error"`   // Red - failed actions

	// UI element colors
	Border        string `yaml:"border"`
	FocusedBorder string `yaml:"focused_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status line
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
	if c.Border == "" {
		c.Border = preset.Border
	}
	if c.FocusedBorder == "" {
		c.FocusedBorder = preset.FocusedBorder
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.StatusBarBg == "" {
		c.StatusBarBg = preset.StatusBarBg
	}
	if c.StatusBarText == "" {
		c.StatusBarText = preset.StatusBarText
	}
}

// MergeFrom overrides colors with every non-empty value in other.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Success, other.Success)
	merge(&c.Error, other.Error)
	merge(&c.Border, other.Border)
	merge(&c.FocusedBorder, other.FocusedBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.StatusBarBg, other.StatusBarBg)
	merge(&c.StatusBarText, other.StatusBarText)
}
