package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// defaultSubject names exports that are not scoped to a project.
const defaultSubject = "items"

// Filename derives the export filename from the subject name (the project
// name, or the generic items label) and the given date:
// <slug>_export_<YYYY-MM-DD>.xlsx. The derivation is deterministic so the
// same subject on the same day always yields the same name.
func Filename(subject string, now time.Time) string {
	slug := slugify(subject)
	if slug == "" {
		slug = defaultSubject
	}
	return fmt.Sprintf("%s_export_%s.xlsx", slug, now.Format("2006-01-02"))
}

// slugify lowercases the subject and replaces every non-alphanumeric rune
// with an underscore.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
