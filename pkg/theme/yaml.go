package theme

// yamlTheme is the on-disk theme document: a name and one color value per
// byte category. The "null" key must be quoted in YAML source so it parses
// as a string key.
type yamlTheme struct {
	Name   string     `yaml:"name"`
	Colors yamlColors `yaml:"colors"`
}

// yamlColors holds the per-category color values. Absent categories keep
// the default palette color.
type yamlColors struct {
	Offset     string `yaml:"offset"`
	Null       string `yaml:"null"`
	Printable  string `yaml:"printable"`
	Whitespace string `yaml:"whitespace"`
	Control    string `yaml:"control"`
	NonASCII   string `yaml:"non-ascii"`
}
