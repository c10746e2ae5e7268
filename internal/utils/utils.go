package utils

import (
	"strings"

	"github.com/google/uuid"
)

// RoomTokenLength is the fixed length of room identifiers.
const RoomTokenLength = 8

// RoomToken generates a short uppercase alphanumeric room identifier.
// Uniqueness is the registry's job; callers must collision-check.
func RoomToken() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:RoomTokenLength])
}

// MaskWord hides every letter of a word behind underscores, preserving
// spaces so multi-word answers keep their shape.
func MaskWord(word string) string {
	if word == "" {
		return ""
	}
	masked := []rune(word)
	for i, r := range masked {
		if r != ' ' {
			masked[i] = '_'
		}
	}
	return string(masked)
}
