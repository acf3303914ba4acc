package event

import (
	"errors"
	"strings"
)

// MaxTextLen is the form's input cap: characters beyond it are not
// accepted in the first place.
const MaxTextLen = 60

// ErrTextRequired signals the "required field" condition for empty or
// whitespace-only event text. It is recovered at the form boundary and
// surfaced inline, never past it.
var ErrTextRequired = errors.New("event: text is required")

// ValidateText trims the text, rejects an empty result, and applies the
// input cap. Unlike time validation this is a reject policy: an empty
// event has nothing to repair to.
func ValidateText(raw string) (string, error) {
	trimmed := []rune(strings.TrimSpace(raw))
	if len(trimmed) == 0 {
		return "", ErrTextRequired
	}
	if len(trimmed) > MaxTextLen {
		trimmed = trimmed[:MaxTextLen]
	}
	return string(trimmed), nil
}
