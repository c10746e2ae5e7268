package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomTokenFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	for i := 0; i < 100; i++ {
		token := RoomToken()
		assert.Regexp(t, pattern, token)
	}
}

func TestRoomTokenVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[RoomToken()] = true
	}
	assert.Greater(t, len(seen), 90, "tokens must not repeat in practice")
}

func TestMaskWord(t *testing.T) {
	assert.Equal(t, "", MaskWord(""))
	assert.Equal(t, "____", MaskWord("casa"))
	assert.Equal(t, "_____ ____", MaskWord("torta cane"))
	assert.Equal(t, "___", MaskWord("ciò"), "accented letters mask as one rune")
}
