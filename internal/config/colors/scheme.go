package colors

// ColorScheme defines the colors used by the shell and CLI output
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `koanf:"preset"`

	// Primary accent color (headings, labels)
	Accent string `koanf:"accent"`

	// Text colors
	Title  string `koanf:"title"`
	Subtle string `koanf:"subtle"` // Muted/placeholder text
	Normal string `koanf:"normal"`

	// Feedback colors (foreground/background pairs)
	InfoFg    string `koanf:"info_fg"`
	InfoBg    string `koanf:"info_bg"`
	WarningFg string `koanf:"warning_fg"`
	WarningBg string `koanf:"warning_bg"`
	ErrorFg   string `koanf:"error_fg"`
	ErrorBg   string `koanf:"error_bg"`
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

// ApplyDefaults fills in missing color values from the named preset
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
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}
