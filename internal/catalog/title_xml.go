package catalog

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"

	"github.com/meur/maiprofile/internal/models"
)

// TitleXMLName is the file name of a title definition in the game data
const TitleXMLName = "Title.xml"

type titleXML struct {
	Name *struct {
		Str *string `xml:"str"`
	} `xml:"name"`
	RareType *string `xml:"rareType"`
}

// ParseTitleXML reads one title definition. name/str is required;
// a missing rareType becomes "".
func ParseTitleXML(r io.Reader) (models.TitleEntry, error) {
	var doc titleXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return models.TitleEntry{}, err
	}
	if doc.Name == nil || doc.Name.Str == nil {
		return models.TitleEntry{}, errors.New("missing name/str element")
	}

	entry := models.TitleEntry{Name: *doc.Name.Str}
	if doc.RareType != nil {
		entry.RareType = *doc.RareType
	}
	return entry, nil
}

// ExtractTitles parses every Title.xml under fsys, in path order. The first
// failing file aborts the extraction.
func ExtractTitles(fsys fs.FS) ([]models.TitleEntry, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Base(p) == TitleXMLName {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk titles: %w", err)
	}
	sort.Strings(paths)

	titles := make([]models.TitleEntry, 0, len(paths))
	for _, p := range paths {
		entry, err := parseTitleFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", p, err)
		}
		titles = append(titles, entry)
	}
	return titles, nil
}

func parseTitleFile(fsys fs.FS, p string) (models.TitleEntry, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return models.TitleEntry{}, err
	}
	defer f.Close()
	return ParseTitleXML(f)
}
