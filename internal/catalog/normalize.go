package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// normalize trims s and folds case and character width so that search
// terms typed as "ＡＢＣ" or "Abc" match "abc". Casers are not safe for
// concurrent use, hence one per call.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(width.Fold.String(s))
}

// searchKey holds the normalized fields an entry is searched by
type searchKey [2]string

func newSearchKey(a, b string) searchKey {
	return searchKey{normalize(a), normalize(b)}
}

// matches expects term to be normalized already
func (k searchKey) matches(term string) bool {
	return strings.Contains(k[0], term) || strings.Contains(k[1], term)
}
