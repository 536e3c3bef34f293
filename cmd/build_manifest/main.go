package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meur/maiprofile/internal/catalog"
	"github.com/meur/maiprofile/internal/models"
)

func main() {
	assetsDir := flag.String("assets", "./assets", "Asset directory with one sub-directory per kind")
	urlPrefix := flag.String("url-prefix", "/assets", "URL prefix the assets are served under")
	outPath := flag.String("out", "./manifest.json", "Manifest output path")
	dryRun := flag.Bool("dry-run", false, "Validate and print a summary without writing the manifest")
	flag.Parse()

	manifest, err := catalog.ScanDir(os.DirFS(*assetsDir), *urlPrefix)
	if err != nil {
		log.Fatalf("Failed to scan assets: %v", err)
	}

	// Validate ids the same way the server does at startup
	registry, err := catalog.Build(manifest, nil)
	if err != nil {
		log.Fatalf("Invalid assets: %v", err)
	}

	for _, kind := range models.Kinds() {
		c, _ := registry.Catalog(kind)
		fmt.Printf("✓ %-16s %d items\n", kind, c.Size())
	}

	if *dryRun {
		log.Printf("Dry run: manifest not written")
		return
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create manifest: %v", err)
	}
	defer f.Close()

	if err := catalog.WriteManifest(f, manifest); err != nil {
		log.Fatalf("Failed to write manifest: %v", err)
	}

	log.Printf("📦 Manifest written to %s", *outPath)
}
