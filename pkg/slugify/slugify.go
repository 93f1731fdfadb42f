package slugify

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Make derives a URL slug from name: lower-case, any run of non-alphanumeric
// characters collapses to a single hyphen, leading/trailing hyphens trimmed.
// Derivation is deterministic; uniqueness is the store's problem.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// MakeOrFallback derives a slug from name, falling back to a timestamp-based
// placeholder when the name yields nothing usable.
func MakeOrFallback(name string) string {
	if s := Make(name); s != "" {
		return s
	}
	return fmt.Sprintf("item-%d", time.Now().UnixNano())
}
