package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, titles, borders)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",
		Accent: "#874BFD",
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",
		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#505050",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",
	}
}

// Kanagawa presets
// https://github.com/rebelot/kanagawa.nvim

// WaveColorScheme returns the dark kanagawa "wave" scheme
func WaveColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "wave",
		Accent: "#957FB8", // oniViolet
		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		InfoFg:    "#658594",
		InfoBg:    "#252535",
		WarningFg: "#FF9E3B",
		WarningBg: "#49443C",
		ErrorFg:   "#E82424",
		ErrorBg:   "#43242B",
	}
}

// DragonColorScheme returns the low-contrast kanagawa "dragon" scheme
func DragonColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "dragon",
		Accent: "#8992A7",
		Title:  "#8BA4B0",
		Subtle: "#737C73",
		Normal: "#C5C9C5",

		InfoFg:    "#658594",
		InfoBg:    "#252535",
		WarningFg: "#FF9E3B",
		WarningBg: "#49443C",
		ErrorFg:   "#E82424",
		ErrorBg:   "#43242B",
	}
}

// LotusColorScheme returns the light kanagawa "lotus" scheme
func LotusColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "lotus",
		Accent: "#624C83",
		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		InfoFg:    "#5E857A",
		InfoBg:    "#B5CBD2",
		WarningFg: "#E98A00",
		WarningBg: "#F9E7C0",
		ErrorFg:   "#E82424",
		ErrorBg:   "#D9A594",
	}
}

// presetColorScheme returns a preset color scheme by name.
// Unknown names get the default scheme.
func presetColorScheme(name string) ColorScheme {
	switch name {
	case "monochrome":
		return MonochromeColorScheme()
	case "wave":
		return WaveColorScheme()
	case "dragon":
		return DragonColorScheme()
	case "lotus":
		return LotusColorScheme()
	default:
		return DefaultColorScheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := presetColorScheme(c.Preset)

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
