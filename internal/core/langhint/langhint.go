// Package langhint guesses a catalog tag from a file name when the content
// classifier has nothing to go on.
package langhint

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// aliases maps linguist names (lowercased) to catalog tags where they differ
var aliases = map[string]string{
	"c#":    "csharp",
	"c++":   "cpp",
	"shell": "bash",
	"tsx":   "typescript",
}

// Known reports whether a tag is in the catalog; *catalog.Catalog satisfies it
type Known interface {
	Known(tag string) bool
}

// FromFile returns the catalog tag linguist associates with name, trying the
// exact file name, then the extension, then content heuristics.
// Ambiguous extensions and tags missing from the catalog yield no hint.
func FromFile(name string, content []byte, cat Known) (string, bool) {
	if name == "" || cat == nil {
		return "", false
	}
	base := filepath.Base(name)

	if lang, safe := enry.GetLanguageByFilename(base); safe {
		if tag, ok := toTag(lang, cat); ok {
			return tag, true
		}
	}
	if lang, safe := enry.GetLanguageByExtension(base); safe {
		if tag, ok := toTag(lang, cat); ok {
			return tag, true
		}
	}
	if len(content) > 0 {
		if tag, ok := toTag(enry.GetLanguage(base, content), cat); ok {
			return tag, true
		}
	}
	return "", false
}

func toTag(lang string, cat Known) (string, bool) {
	if lang == "" || lang == "Text" {
		return "", false
	}
	tag := strings.ToLower(lang)
	if a, ok := aliases[tag]; ok {
		tag = a
	}
	if !cat.Known(tag) {
		return "", false
	}
	return tag, true
}
