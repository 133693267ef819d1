package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
)

func TestSignupInputValid(t *testing.T) {
	in := SignupInput{
		Username:        "ada",
		Email:           "ada@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	assert.NoError(t, in.Validate())
}

func TestSignupInputUsernameBounds(t *testing.T) {
	in := SignupInput{Username: "a", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}
	assert.Error(t, in.Validate())

	in.Username = "abcdefghijklmnopqrstu" // 21 characters
	assert.Error(t, in.Validate())

	in.Username = "ab"
	assert.NoError(t, in.Validate())
}

func TestSignupInputEmailShape(t *testing.T) {
	in := SignupInput{Username: "ada", Password: "secret1", ConfirmPassword: "secret1"}

	for _, bad := range []string{"", "plain", "a@b", "a b@c.com", "a@b c.com"} {
		in.Email = bad
		assert.Error(t, in.Validate(), "email %q should be rejected", bad)
	}

	in.Email = "ada@example.com"
	assert.NoError(t, in.Validate())
}

func TestSignupInputPasswordRules(t *testing.T) {
	in := SignupInput{Username: "ada", Email: "ada@example.com", Password: "short", ConfirmPassword: "short"}
	err := in.Validate()
	require.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.ValidationError))

	in.Password = "secret1"
	in.ConfirmPassword = "different"
	assert.Error(t, in.Validate())
}

func TestLoginInputValidate(t *testing.T) {
	assert.Error(t, LoginInput{}.Validate())
	assert.Error(t, LoginInput{Email: "bad", Password: "x"}.Validate())
	assert.Error(t, LoginInput{Email: "a@b.co"}.Validate())
	assert.NoError(t, LoginInput{Email: "a@b.co", Password: "x"}.Validate())
}

func TestResetPasswordInputValidate(t *testing.T) {
	assert.Error(t, ResetPasswordInput{NewPassword: "secret1", ConfirmPassword: "secret1"}.Validate())
	assert.Error(t, ResetPasswordInput{Token: "tok", NewPassword: "short", ConfirmPassword: "short"}.Validate())
	assert.Error(t, ResetPasswordInput{Token: "tok", NewPassword: "secret1", ConfirmPassword: "secret2"}.Validate())
	assert.NoError(t, ResetPasswordInput{Token: "tok", NewPassword: "secret1", ConfirmPassword: "secret1"}.Validate())
}

func TestJournalInputValidate(t *testing.T) {
	assert.Error(t, JournalInput{Mood: "Happy"}.Validate())
	assert.Error(t, JournalInput{Content: "wrote some code"}.Validate())
	assert.NoError(t, JournalInput{Content: "wrote some code", Mood: "Happy"}.Validate())
}

func TestReflectionInputValidate(t *testing.T) {
	in := ReflectionInput{SmileToday: "sun", DrainedToday: "meetings", GratefulToday: "coffee"}
	assert.NoError(t, in.Validate())

	in.GratefulToday = "  "
	assert.Error(t, in.Validate())
}

func TestMoodLogInputValidate(t *testing.T) {
	assert.Error(t, MoodLogInput{}.Validate())
	assert.Error(t, MoodLogInput{Mood: "Happy", Emotions: []string{"calm", " "}}.Validate())
	assert.NoError(t, MoodLogInput{Mood: "Happy", Emotions: []string{"calm", "hopeful"}}.Validate())
	assert.NoError(t, MoodLogInput{Mood: "Happy"}.Validate())
}

func TestPredicates(t *testing.T) {
	assert.True(t, NonEmpty("x"))
	assert.False(t, NonEmpty("  "))
	assert.True(t, MinLen("abc", 3))
	assert.False(t, MinLen("ab", 3))
	assert.True(t, MaxLen("ab", 2))
	assert.False(t, MaxLen("abc", 2))
	assert.True(t, Equals("a", "a"))
	assert.False(t, Equals("a", "b"))
}

func TestLengthPredicatesCountRunes(t *testing.T) {
	// 15 CJK characters are 45 bytes but must pass a 20-character cap.
	assert.True(t, MaxLen("日本語の名前です日本語の名前で", 20))
	// 6 accented characters are 12 bytes and satisfy a 6-character minimum.
	assert.True(t, MinLen("ññññññ", 6))
	// 5 runes stay below the minimum regardless of byte width.
	assert.False(t, MinLen("ñññññ", 6))
}

func TestSignupInputMultibyteUsername(t *testing.T) {
	in := SignupInput{
		Username:        "日本語の名前です日本語の名前で", // 15 characters
		Email:           "ada@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	assert.NoError(t, in.Validate())

	in.Password = "ñññññ"
	in.ConfirmPassword = "ñññññ"
	assert.Error(t, in.Validate())
}
