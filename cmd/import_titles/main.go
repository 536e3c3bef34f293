package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meur/maiprofile/internal/catalog"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func main() {
	rawDir := flag.String("raw", "./title_raw", "Directory holding the exported Title.xml files")
	outPath := flag.String("out", "./assets/title.json", "Title JSON output path")
	dryRun := flag.Bool("dry-run", false, "Print summary without writing the JSON file")
	flag.Parse()

	info, err := os.Stat(*rawDir)
	if err != nil || !info.IsDir() {
		log.Fatalf("%s✗ Title directory not found: %s%s", colorRed, *rawDir, colorReset)
	}

	titles, err := catalog.ExtractTitles(os.DirFS(*rawDir))
	if err != nil {
		log.Fatalf("%s✗ Failed to extract titles: %v%s", colorRed, err, colorReset)
	}
	if len(titles) == 0 {
		log.Printf("%s⚠ Warning: no %s files under %s%s", colorYellow, catalog.TitleXMLName, *rawDir, colorReset)
	}

	duplicates := len(titles) - catalog.NewTitleCatalog(titles).UniqueKeys()
	if duplicates > 0 {
		log.Printf("%s⚠ Warning: %d title(s) share a name::rareType key%s", colorYellow, duplicates, colorReset)
	}

	fmt.Printf("%s📦 Loaded %d titles from XML%s\n", colorCyan, len(titles), colorReset)

	if *dryRun {
		log.Printf("Dry run: would write %d titles to %s", len(titles), *outPath)
		return
	}

	// Titles may contain &, < or > verbatim
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(titles); err != nil {
		log.Fatalf("%s✗ Failed to encode titles: %v%s", colorRed, err, colorReset)
	}

	if err := os.WriteFile(*outPath, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("%s✗ Failed to write titles: %v%s", colorRed, err, colorReset)
	}

	fmt.Printf("%s✓ Wrote %d titles to %s%s\n", colorGreen, len(titles), *outPath, colorReset)
}
