// Package validate holds the pure field predicates shared by every
// document-building operation. The patterns mirror the registrar's
// published field formats; keeping them here stops the regexes from
// drifting between call sites.
package validate

import "regexp"

// Unbounded disables one side of a LengthInRange check.
const Unbounded = -1

var (
	// Russian phone shape: optional 8/+7 prefix, optional 3-digit area
	// code (parentheses allowed), then 7-10 digits with - or space.
	phoneRe = regexp.MustCompile(`^((8|\+7)[\- ]?)?(\(?\d{3}\)?[\- ]?)?[\d\- ]{7,10}$`)

	// Minimal address shape: local part, @, domain with at least one dot.
	// Stricter than the historical contains-@ check.
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

// PhoneLike reports whether s looks like a customer phone number.
func PhoneLike(s string) bool {
	return phoneRe.MatchString(s)
}

// EmailLike reports whether s looks like an e-mail address.
func EmailLike(s string) bool {
	return emailRe.MatchString(s)
}

// PhoneOrEmail accepts either contact form.
func PhoneOrEmail(s string) bool {
	return PhoneLike(s) || EmailLike(s)
}

// LengthInRange reports whether len(s) satisfies the given bounds.
// Pass Unbounded to leave a side unconstrained; each bound is checked
// independently of the other.
func LengthInRange(s string, min, max int) bool {
	n := len([]rune(s))
	if min != Unbounded && n < min {
		return false
	}
	if max != Unbounded && n > max {
		return false
	}
	return true
}

// ExactLength reports whether s is exactly n characters long.
func ExactLength(s string, n int) bool {
	return len([]rune(s)) == n
}
