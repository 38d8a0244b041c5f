package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVersionTag(t *testing.T) {

	t.Run("ReturnsVersionPrefixedWithVAndAbbreviatedRevision", func(t *testing.T) {

		// act
		tag := GenerateVersionTag("1.0.0", "abcdef1234567")

		assert.Equal(t, "v1.0.0-abcdef1", tag)
	})

	t.Run("ReturnsSameTagForRepeatedInvocationsWithSameInput", func(t *testing.T) {

		// act
		first := GenerateVersionTag("2.3.1", "0123456789abcdef")
		second := GenerateVersionTag("2.3.1", "0123456789abcdef")

		assert.Equal(t, first, second)
	})

	t.Run("ReturnsFullRevisionWhenShorterThanSevenCharacters", func(t *testing.T) {

		// act
		tag := GenerateVersionTag("1.0.0", "abc")

		assert.Equal(t, "v1.0.0-abc", tag)
	})

	t.Run("ReturnsExactlySevenRevisionCharactersForLongRevisions", func(t *testing.T) {

		// act
		tag := GenerateVersionTag("0.1.2", "ffffffffffffffffffffffffffffffffffffffff")

		assert.Equal(t, "v0.1.2-fffffff", tag)
	})
}
