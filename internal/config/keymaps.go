package config

// KeyMappings defines the configurable key bindings of the interactive menus
type KeyMappings struct {
	// Navigation
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
	Next string `yaml:"next"`
	Prev string `yaml:"prev"`

	// Forms
	Submit string `yaml:"submit"`
	Back   string `yaml:"back"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Up:     "k",
		Down:   "j",
		Next:   "tab",
		Prev:   "shift+tab",
		Submit: "enter",
		Back:   "esc",
		Quit:   "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Up == "" {
		k.Up = defaults.Up
	}
	if k.Down == "" {
		k.Down = defaults.Down
	}
	if k.Next == "" {
		k.Next = defaults.Next
	}
	if k.Prev == "" {
		k.Prev = defaults.Prev
	}
	if k.Submit == "" {
		k.Submit = defaults.Submit
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
