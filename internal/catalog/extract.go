package catalog

import (
	"cmp"
	"regexp"
	"strconv"

	"github.com/meur/maiprofile/internal/models"
)

var (
	sixDigitRegex = regexp.MustCompile(`(\d{6})`)
	twoDigitRegex = regexp.MustCompile(`(\d{2})`)
)

// PatternExtractor returns the first capture group of re, or the whole
// match when re has no groups.
func PatternExtractor(re *regexp.Regexp) Extractor {
	return func(filename string) string {
		m := re.FindStringSubmatch(filename)
		switch {
		case m == nil:
			return ""
		case len(m) > 1:
			return m[1]
		default:
			return m[0]
		}
	}
}

// SixDigitID extracts the first run of six digits, e.g. UI_Frame_000101.png -> 000101
var SixDigitID = PatternExtractor(sixDigitRegex)

// TwoDigitID extracts the first run of two digits, e.g. UI_DNM_DaniPlate_03.png -> 03
var TwoDigitID = PatternExtractor(twoDigitRegex)

// ByID orders items lexicographically by id
func ByID(a, b models.AssetItem) int {
	return cmp.Compare(a.ID, b.ID)
}

// ByNumericID orders items by the integer value of their id, so "2" sorts
// before "10". Non-numeric ids sort after numeric ones, lexicographically.
func ByNumericID(a, b models.AssetItem) int {
	an, aErr := strconv.Atoi(a.ID)
	bn, bErr := strconv.Atoi(b.ID)
	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(an, bn)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return ByID(a, b)
}
