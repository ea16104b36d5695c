package theme

import "embed"

// builtinThemesFS embeds the built-in theme directory.
//
//go:embed themes/*.yml
var builtinThemesFS embed.FS
