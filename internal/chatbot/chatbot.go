// Package chatbot implements the fixed-phrase supportive chat responder.
// Every call is independent: no conversation memory, no partial matching.
package chatbot

import "strings"

// EmptyReply is returned when the incoming message is blank after trimming.
const EmptyReply = "Please say something so I can help!"

// UnknownReply is returned when the normalized message has no exact match.
const UnknownReply = "❌ This message is not in the dataset. Please try again or rephrase."

// supportResponses maps normalized phrases to supportive replies. Matching
// is exact; several phrases use typographic apostrophes as typed by clients.
var supportResponses = map[string]string{
	"i'm not okay":              "It’s okay to not be okay. You’re not alone—I’m here with you.",
	"i feel so alone":           "You’re not alone in this moment. I’m here for you.",
	"i can’t do this anymore":   "That sounds really heavy. Let’s take it one breath at a time together.",
	"i feel broken":             "You’re not broken. You’re a human being going through a really hard time.",
	"i hate myself":             "You deserve compassion—even from yourself. I’m here.",
	"i feel like giving up":     "You’ve made it this far. Let’s talk about what’s making you feel this way.",
	"i don’t want to be here":   "That sounds painful. You matter. I’m here with you.",
	"no one cares about me":     "I care about you. You’re not invisible to me.",
	"i feel anxious":            "Let’s breathe together. You’re not alone.",
	"i feel like i’m drowning":  "When it’s all too much, just focus on this moment. We’ll get through it.",
	"i can’t breathe":           "You’re safe. Breathe in for 4 seconds, hold, and exhale. I’m with you.",
	"everything hurts":          "I'm so sorry you're in pain. Want to talk more about it?",
	"i feel worthless":          "You matter more than you think. Let’s talk.",
	"i just want it to stop":    "That sounds really hard. I’m here for you.",
	"i’m scared":                "Want to talk about what’s worrying you? I’m here.",
	"i don’t feel anything":     "Feeling numb is okay. You're not broken.",
	"i’m tired":                 "You’re doing your best. Let’s pause and breathe.",
	"i feel like a failure":     "You're not a failure. You're struggling, and that’s okay.",
	"i feel like crying":        "It’s okay to cry. I’m here with you.",
	"i’m angry":                 "You have every right to feel angry. Want to talk about it?",
	"i feel lost":               "Let’s take one step at a time. You’re not alone.",
	"why am i like this":        "You’re doing your best. You’re not alone in this.",
	"i messed everything up":    "Mistakes don’t define you. You’re still worthy of love.",
	"i feel so much pressure":   "That pressure must be exhausting. You’re allowed to slow down.",
	"i want to disappear":       "Please stay. The world is better with you in it.",
	"i feel ashamed":            "You deserve understanding, not judgment.",
	"nobody gets me":            "I want to understand. Tell me more.",
	"i feel hopeless":           "I know it’s hard. But I believe in you.",
	"i’m panicking":             "Let’s slow your breath and find calm together.",
	"nothing matters anymore":   "You matter—and I’m here for you.",
}

// Normalize lowercases and trims surrounding whitespace.
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// Respond returns the supportive reply for an exactly-matching phrase,
// EmptyReply for a blank message, and UnknownReply otherwise.
func Respond(message string) string {
	normalized := Normalize(message)
	if normalized == "" {
		return EmptyReply
	}
	if reply, ok := supportResponses[normalized]; ok {
		return reply
	}
	return UnknownReply
}

// PhraseCount reports the size of the fixed phrase table.
func PhraseCount() int {
	return len(supportResponses)
}
