package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for menu selections and titles)
	Accent string `yaml:"accent"`

	// Tables
	Header      string `yaml:"header"`
	TableBorder string `yaml:"table_border"`
	OddRow      string `yaml:"odd_row"`
	EvenRow     string `yaml:"even_row"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // elapsed time, hints
	Normal string `yaml:"normal"`

	// Status lines
	Success string `yaml:"success"`
	Info    string `yaml:"info"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
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

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Header, preset.Header)
	fill(&c.TableBorder, preset.TableBorder)
	fill(&c.OddRow, preset.OddRow)
	fill(&c.EvenRow, preset.EvenRow)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Success, preset.Success)
	fill(&c.Info, preset.Info)
	fill(&c.Warning, preset.Warning)
	fill(&c.Error, preset.Error)
}

// MergeFrom copies every non-empty value of other onto c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Header, other.Header)
	merge(&c.TableBorder, other.TableBorder)
	merge(&c.OddRow, other.OddRow)
	merge(&c.EvenRow, other.EvenRow)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Success, other.Success)
	merge(&c.Info, other.Info)
	merge(&c.Warning, other.Warning)
	merge(&c.Error, other.Error)
}
