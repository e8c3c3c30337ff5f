package config

import "github.com/mrlokans/perpustakaan/internal/catalog"

const DefaultPort = 8188

// Header text used when LIBRARY_TITLE / LIBRARY_SUBTITLE are not set.
var (
	DefaultLibraryTitle    = catalog.DefaultCard.Title
	DefaultLibrarySubtitle = catalog.DefaultCard.Subtitle
)

// DotEnvFiles are loaded, in order, before reading the environment.
var DotEnvFiles = []string{".env", ".env.local"}
