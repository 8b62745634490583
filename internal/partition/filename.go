package partition

import (
	"regexp"
	"strings"
)

// space matches Unicode whitespace; RE2's \s is ASCII only.
const space = `\p{Zs}\t\n\v\f\r\x{2028}\x{2029}\x{FEFF}`

var (
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9` + space + `\-_]`)
	whitespaceRuns  = regexp.MustCompile(`[` + space + `]+`)
	underscoreRuns  = regexp.MustCompile(`_+`)
)

// SafeFilename derives the output filename for a category:
// special characters are dropped, whitespace becomes "_", repeated
// underscores collapse, edge underscores are trimmed, the result is
// lower-cased and suffix is appended.
//
//	SafeFilename("FAQs & Setup!", "_vector_store.json") == "faqs_setup_vector_store.json"
func SafeFilename(category, suffix string) string {
	return safeStem(category) + suffix
}

func safeStem(category string) string {
	s := disallowedChars.ReplaceAllString(category, "")
	s = whitespaceRuns.ReplaceAllString(s, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")

	return strings.ToLower(s)
}
