package patterns

import (
	"regexp"
	"strings"
)

const maxFilenameRunes = 100

var (
	illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	filenameSpaceRuns    = regexp.MustCompile(`[\s_]+`)
)

// SanitizeFilename converts a condition name into a filesystem-safe base
// name: illegal characters become underscores, runs of whitespace and
// underscores collapse to a single space, and the result is trimmed and
// truncated.
func SanitizeFilename(name string) string {
	name = illegalFilenameChars.ReplaceAllString(name, "_")
	name = filenameSpaceRuns.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	return truncateRunes(name, maxFilenameRunes)
}

// SafeFilename makes an already-descriptive name safe without collapsing its
// internal spacing. A leading "#" is spelled out as "Hash" because such
// names misbehave in shells and some filesystems.
func SafeFilename(name string) string {
	if strings.HasPrefix(name, "#") {
		name = "Hash" + name[1:]
	}
	name = illegalFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)
	return truncateRunes(name, maxFilenameRunes)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
