package config

// KeyMappings defines all configurable key bindings of the bill table
type KeyMappings struct {
	// Bills
	NewBill    string `yaml:"new_bill"`
	EditBill   string `yaml:"edit_bill"`
	DeleteBill string `yaml:"delete_bill"`
	ViewBill   string `yaml:"view_bill"`
	Refresh    string `yaml:"refresh"`

	// Table
	Search    string `yaml:"search"`
	ExportCSV string `yaml:"export_csv"`
	ExportPDF string `yaml:"export_pdf"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NewBill:    "n",
		EditBill:   "e",
		DeleteBill: "d",
		ViewBill:   "enter",
		Refresh:    "r",

		Search:    "/",
		ExportCSV: "x",
		ExportPDF: "p",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NewBill == "" {
		k.NewBill = defaults.NewBill
	}
	if k.EditBill == "" {
		k.EditBill = defaults.EditBill
	}
	if k.DeleteBill == "" {
		k.DeleteBill = defaults.DeleteBill
	}
	if k.ViewBill == "" {
		k.ViewBill = defaults.ViewBill
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.ExportCSV == "" {
		k.ExportCSV = defaults.ExportCSV
	}
	if k.ExportPDF == "" {
		k.ExportPDF = defaults.ExportPDF
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
