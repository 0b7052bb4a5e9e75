package pure_utils

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/rentalworks/erp-backend/models"
)

// MaxUsernameLength matches the varchar(30) on users.username.
const MaxUsernameLength = 30

func isAllowedUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '_' || r == '-':
		return true
	}
	return false
}

// NormalizeUsername derives a candidate username from the local part of an
// email address: everything before the first '@', restricted to
// [a-z0-9._-], lowercased, truncated to MaxUsernameLength characters.
//
// It performs no email-format validation beyond locating the separator;
// that is the job of the validation layer in front of it. The function is
// pure: same input, same output, no side effects.
func NormalizeUsername(email string) (string, error) {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "", errors.WithDetail(models.ErrInvalidEmailForUsername,
			"email has no local part before '@'")
	}

	var b strings.Builder
	for _, r := range email[:at] {
		if isAllowedUsernameRune(r) {
			b.WriteRune(r)
		}
	}

	candidate := strings.ToLower(b.String())
	if len(candidate) > MaxUsernameLength {
		candidate = candidate[:MaxUsernameLength]
	}
	if candidate == "" {
		return "", errors.WithDetail(models.ErrInvalidEmailForUsername,
			"local part is empty once disallowed characters are stripped")
	}
	return candidate, nil
}
