package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mrlokans/perpustakaan/internal/entities"
)

type (
	Config struct {
		HTTP
		Global
		UI
		Library
	}

	HTTP struct {
		Port int32
		Host string
		Mode string // gin mode: debug, release or test
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	UI struct {
		TemplatesPath string // Empty means the templates embedded in the binary
		StaticPath    string // Empty means the embedded static assets
	}
	Library struct {
		Title    string // Header title shown on every screen
		Subtitle string // Header subtitle
	}
)

// Card returns the header card built from the library settings.
func (l Library) Card() entities.Card {
	return entities.Card{Title: l.Title, Subtitle: l.Subtitle}
}

// loadDotEnv reads variables from .env files in the working directory.
// Variables already present in the environment are left untouched.
func loadDotEnv(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func NewConfig() *Config {
	loadDotEnv(DotEnvFiles...)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("templates_path", "")
	v.SetDefault("static_path", "")
	v.SetDefault("library_title", DefaultLibraryTitle)
	v.SetDefault("library_subtitle", DefaultLibrarySubtitle)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
			Mode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Library: Library{
			Title:    v.GetString("LIBRARY_TITLE"),
			Subtitle: v.GetString("LIBRARY_SUBTITLE"),
		},
	}
}
