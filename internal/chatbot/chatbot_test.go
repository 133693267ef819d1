package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondExactMatch(t *testing.T) {
	reply := Respond("i'm not okay")
	assert.Equal(t, "It’s okay to not be okay. You’re not alone—I’m here with you.", reply)
}

func TestRespondNormalizesCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, Respond("i feel anxious"), Respond("  I Feel Anxious  "))
	assert.Equal(t, "Let’s breathe together. You’re not alone.", Respond("I FEEL ANXIOUS"))
}

func TestRespondNoPartialMatch(t *testing.T) {
	// A superset of a known phrase must not match.
	assert.Equal(t, UnknownReply, Respond("I'm not okay today"))
	assert.Equal(t, UnknownReply, Respond("hello"))
}

func TestRespondEmptyMessage(t *testing.T) {
	assert.Equal(t, EmptyReply, Respond(""))
	assert.Equal(t, EmptyReply, Respond("   "))
	assert.Equal(t, EmptyReply, Respond("\n\t"))
}

func TestRespondApostropheVariantsAreDistinct(t *testing.T) {
	// The table stores some phrases with typographic apostrophes; a straight
	// apostrophe variant of those is a different key and must miss.
	assert.Equal(t, "Want to talk about what’s worrying you? I’m here.", Respond("i’m scared"))
	assert.Equal(t, UnknownReply, Respond("i'm scared"))
}

func TestPhraseCount(t *testing.T) {
	assert.Equal(t, 30, PhraseCount())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "i feel lost", Normalize("  I Feel Lost "))
	assert.Equal(t, "", Normalize("   "))
}
