package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Actions
	AddStudent string `yaml:"add_student"`
	ViewAll    string `yaml:"view_all"`
	Search     string `yaml:"search"`

	// Form navigation
	NextField string `yaml:"next_field"`
	PrevField string `yaml:"prev_field"`
	Submit    string `yaml:"submit"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings.
// Letters are left to the text inputs, so every action sits on a modifier or function key.
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddStudent: "ctrl+s",
		ViewAll:    "ctrl+r",
		Search:     "ctrl+f",

		NextField: "tab",
		PrevField: "shift+tab",
		Submit:    "enter",

		ShowHelp: "f1",
		Quit:     "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddStudent == "" {
		k.AddStudent = defaults.AddStudent
	}
	if k.ViewAll == "" {
		k.ViewAll = defaults.ViewAll
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.Submit == "" {
		k.Submit = defaults.Submit
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
