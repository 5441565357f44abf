package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Catalog
	AddCheese    string `yaml:"add_cheese"`
	RenameCheese string `yaml:"rename_cheese"`
	DeleteCheese string `yaml:"delete_cheese"`
	MoveUp       string `yaml:"move_up"`
	MoveDown     string `yaml:"move_down"`

	// Navigation
	PrevCheese string `yaml:"prev_cheese"`
	NextCheese string `yaml:"next_cheese"`
	PrevPage   string `yaml:"prev_page"`
	NextPage   string `yaml:"next_page"`
	FirstPage  string `yaml:"first_page"`
	LastPage   string `yaml:"last_page"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddCheese:    "a",
		RenameCheese: "r",
		DeleteCheese: "d",
		MoveUp:       "K",
		MoveDown:     "J",

		PrevCheese: "k",
		NextCheese: "j",
		PrevPage:   "h",
		NextPage:   "l",
		FirstPage:  "g",
		LastPage:   "G",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddCheese == "" {
		k.AddCheese = defaults.AddCheese
	}
	if k.RenameCheese == "" {
		k.RenameCheese = defaults.RenameCheese
	}
	if k.DeleteCheese == "" {
		k.DeleteCheese = defaults.DeleteCheese
	}
	if k.MoveUp == "" {
		k.MoveUp = defaults.MoveUp
	}
	if k.MoveDown == "" {
		k.MoveDown = defaults.MoveDown
	}
	if k.PrevCheese == "" {
		k.PrevCheese = defaults.PrevCheese
	}
	if k.NextCheese == "" {
		k.NextCheese = defaults.NextCheese
	}
	if k.PrevPage == "" {
		k.PrevPage = defaults.PrevPage
	}
	if k.NextPage == "" {
		k.NextPage = defaults.NextPage
	}
	if k.FirstPage == "" {
		k.FirstPage = defaults.FirstPage
	}
	if k.LastPage == "" {
		k.LastPage = defaults.LastPage
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
