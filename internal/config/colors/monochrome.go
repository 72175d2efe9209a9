package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Header:      "#FFFFFF",
		TableBorder: "#585858",
		OddRow:      "#D0D0D0",
		EvenRow:     "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Success: "#FFFFFF",
		Info:    "#FFFFFF",
		Warning: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}
