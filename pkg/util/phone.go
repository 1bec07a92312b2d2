package util

import "regexp"

// Indian mobile numbers: 10 digits starting with 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// IsValidPhoneNumber reports whether the given string is a valid
// Indian mobile number.
func IsValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}
