package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/orangedata-go/internal/validate"
)

func TestPhoneLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain seven digits", "1234567", true},
		{"federal with plus", "+7 999 1234567", true},
		{"federal with eight", "8-999-123-45-67", true},
		{"area code in parentheses", "(495) 123-45-67", true},
		{"bare ten digits", "9991234567", true},
		{"letters", "not-a-phone", false},
		{"too short", "12345", false},
		{"email is not a phone", "user@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.PhoneLike(tt.input))
		})
	}
}

func TestEmailLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple address", "user@example.com", true},
		{"subdomain", "a@b.co.uk", true},
		{"no dot in domain", "user@localhost", false},
		{"no at sign", "example.com", false},
		{"two at signs", "a@b@c.com", false},
		{"empty local part", "@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.EmailLike(tt.input))
		})
	}
}

func TestPhoneOrEmail(t *testing.T) {
	assert.True(t, validate.PhoneOrEmail("+7 999 1234567"))
	assert.True(t, validate.PhoneOrEmail("user@example.com"))
	assert.False(t, validate.PhoneOrEmail("neither"))
}

func TestLengthInRange(t *testing.T) {
	tests := []struct {
		name string
		s    string
		min  int
		max  int
		want bool
	}{
		{"inside both bounds", "abc", 1, 5, true},
		{"below minimum", "abc", 4, validate.Unbounded, false},
		{"above maximum", "abcdef", validate.Unbounded, 5, false},
		{"at minimum", "abc", 3, 5, true},
		{"at maximum", "abcde", 1, 5, true},
		{"no lower bound", "abc", validate.Unbounded, 5, true},
		{"no upper bound", "abc", 1, validate.Unbounded, true},
		{"no bounds at all", strings.Repeat("x", 1000), validate.Unbounded, validate.Unbounded, true},
		{"empty below min 1", "", 1, 32, false},
		{"empty with no lower bound", "", validate.Unbounded, 32, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.LengthInRange(tt.s, tt.min, tt.max))
		})
	}
}

func TestLengthInRangeCountsRunes(t *testing.T) {
	// Cyrillic text is multi-byte; bounds apply to characters.
	assert.True(t, validate.LengthInRange("Привет", 6, 6))
	assert.False(t, validate.LengthInRange("Привет", validate.Unbounded, 5))
}

func TestExactLength(t *testing.T) {
	assert.True(t, validate.ExactLength("12345678", 8))
	assert.False(t, validate.ExactLength("1234567", 8))
	assert.True(t, validate.ExactLength("Привет", 6))
}
