// Command generate_site renders the catalog browser into a directory of
// static HTML files.
// Usage: go run cmd/generate_site/main.go [-out ./site]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/perpustakaan/internal/catalog"
	"github.com/mrlokans/perpustakaan/internal/config"
	"github.com/mrlokans/perpustakaan/internal/sitegen"
)

const defaultOutputDir = "./site"

func main() {
	outDir := flag.String("out", defaultOutputDir, "directory to write the generated site to")
	clean := flag.Bool("clean", false, "remove the output directory before generating")
	flag.Parse()

	cfg := config.NewConfig()

	if *clean {
		if err := os.RemoveAll(*outDir); err != nil {
			log.Fatalf("Failed to remove existing output directory: %v", err)
		}
	}

	gen, err := sitegen.New(cfg.UI.TemplatesPath, cfg.UI.StaticPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Printf("Generating site at %s...", *outDir)

	pages, err := gen.Generate(*outDir, catalog.Default(), cfg.Library.Card())
	if err != nil {
		log.Fatalf("Failed to generate site: %v", err)
	}

	log.Printf("Site generated successfully: %d pages", pages)
}
