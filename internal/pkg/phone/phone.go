package phone

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidPhoneNumber = errors.New("invalid phone number")

// E.164: leading +, country code, 8-15 digits total
var e164Pattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// Normalize strips spaces and dashes, then validates the result as E.164.
// The client sends numbers like "+966 50 123 4567".
func Normalize(raw string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(raw))
	if !e164Pattern.MatchString(cleaned) {
		return "", ErrInvalidPhoneNumber
	}
	return cleaned, nil
}

func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
