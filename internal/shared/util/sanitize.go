package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxPlayerNameLen = 60

// SanitizePlayerName trims and normalizes a player name for use inside
// generated documents. Control characters and markup delimiters are
// rejected rather than stripped so callers can surface a validation error.
func SanitizePlayerName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if strings.ContainsAny(s, "<>{}") {
		return "", errors.New("invalid player name")
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", errors.New("invalid player name")
		}
	}
	s = strings.Join(strings.Fields(s), " ")
	if len([]rune(s)) > maxPlayerNameLen {
		s = string([]rune(s)[:maxPlayerNameLen])
	}
	return s, nil
}
