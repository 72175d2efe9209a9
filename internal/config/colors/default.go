package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Tables
		Header:      "#D75FD7",
		TableBorder: "#5F87D7",
		OddRow:      "#D0D0D0",
		EvenRow:     "#A8A8A8",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status
		Success: "#5FD75F",
		Info:    "#00AFFF",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}
