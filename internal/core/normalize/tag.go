package normalize

import (
	"regexp"

	perr "langshift/internal/platform/errors"
)

var tagPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidTag reports whether tag is a well formed language identifier
func ValidTag(tag string) bool { return tagPattern.MatchString(tag) }

// ValidateTag checks a language identifier, naming field in the error
func ValidateTag(field, tag string) error {
	if tag == "" {
		return perr.WithField(perr.Validationf("source and target languages must be specified"), field)
	}
	if !ValidTag(tag) {
		return perr.WithField(perr.Validationf("invalid language identifier format: %q", tag), field)
	}
	return nil
}
