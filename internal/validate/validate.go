// Package validate enforces the account field-format rules. The patterns
// are part of the external API contract and must not be loosened or
// tightened: clients depend on the exact boundaries.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

// Validation failures on signup.
var (
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
	ErrInvalidUserID    = errors.New("user id must be 4-12 letters or digits")
	ErrInvalidPassword  = errors.New("password must be 10-20 characters combining at least two of letters, digits and special characters")
	ErrInvalidPhoneNo   = errors.New("phone number format is invalid")
	ErrInvalidEmail     = errors.New("email format is invalid")
	ErrInvalidUsername  = errors.New("username must be 2-5 Hangul characters")
)

// Validation failures on profile modification. Kept separate so each
// rejected field produces its own user-facing message.
var (
	ErrInvalidNewPassword = errors.New("new password format is invalid")
	ErrInvalidNewPhoneNo  = errors.New("new phone number format is invalid")
	ErrInvalidNewEmail    = errors.New("new email format is invalid")
	ErrInvalidNewUsername = errors.New("new username format is invalid")
)

var (
	// 4-12 alphanumeric characters, no special characters.
	userIDRegex = regexp.MustCompile(`^[a-zA-Z0-9]{4,12}$`)
	// Domestic mobile prefix 01[0,1,6,7,8,9] followed by 7-8 digits, no separators.
	phoneNoRegex = regexp.MustCompile(`^01[0|1|6|7|8|9]\d{3,4}\d{4}$`)
	// local@domain.tld shape.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Hangul syllables, 2-5 characters.
	usernameRegex = regexp.MustCompile(`^[가-힣]{2,5}$`)
)

const passwordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// IsValidUserID reports whether userID matches the account id rule.
func IsValidUserID(userID string) bool {
	return userIDRegex.MatchString(userID)
}

// IsValidPassword reports whether password is 10-20 characters drawn from
// letters, digits and the allowed specials, containing a letter followed by a
// digit, a letter followed by a special, or a digit followed by a special.
// The pairing is positional: "abcdef1234" is valid but "123456789a" is not.
// The rule is checked programmatically because it cannot be expressed without
// lookahead.
func IsValidPassword(password string) bool {
	if len(password) < 10 || len(password) > 20 {
		return false
	}

	firstLetter, firstDigit := -1, -1
	lastDigit, lastSpecial := -1, -1
	for i, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			if firstLetter == -1 {
				firstLetter = i
			}
		case r >= '0' && r <= '9':
			if firstDigit == -1 {
				firstDigit = i
			}
			lastDigit = i
		case strings.ContainsRune(passwordSpecials, r):
			lastSpecial = i
		default:
			return false
		}
	}

	switch {
	case firstLetter != -1 && firstLetter < lastDigit:
		return true
	case firstLetter != -1 && firstLetter < lastSpecial:
		return true
	case firstDigit != -1 && firstDigit < lastSpecial:
		return true
	default:
		return false
	}
}

// IsValidPhoneNo reports whether phoneNo matches the mobile number rule.
func IsValidPhoneNo(phoneNo string) bool {
	return phoneNoRegex.MatchString(phoneNo)
}

// IsValidEmail reports whether email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUsername reports whether username is 2-5 Hangul characters.
func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// Signup validates a registration request. The first violated rule wins, in
// a fixed order, so every failure surfaces a field-specific message.
func Signup(req model.SignupRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !IsValidUserID(req.UserID) {
		return ErrInvalidUserID
	}
	if !IsValidPassword(req.Password) {
		return ErrInvalidPassword
	}
	if !IsValidPhoneNo(req.PhoneNo) {
		return ErrInvalidPhoneNo
	}
	if !IsValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if !IsValidUsername(req.Username) {
		return ErrInvalidUsername
	}
	return nil
}

// Modify validates the optional fields of a profile update. Blank fields are
// skipped: they mean "leave unchanged", not "set to empty".
func Modify(req model.ModifyUserRequest) error {
	if hasText(req.NewPassword) && !IsValidPassword(req.NewPassword) {
		return ErrInvalidNewPassword
	}
	if hasText(req.PhoneNo) && !IsValidPhoneNo(req.PhoneNo) {
		return ErrInvalidNewPhoneNo
	}
	if hasText(req.Email) && !IsValidEmail(req.Email) {
		return ErrInvalidNewEmail
	}
	if hasText(req.Username) && !IsValidUsername(req.Username) {
		return ErrInvalidNewUsername
	}
	return nil
}

// IsValidationError reports whether err is any of this package's sentinels.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrPasswordMismatch, ErrInvalidUserID, ErrInvalidPassword,
		ErrInvalidPhoneNo, ErrInvalidEmail, ErrInvalidUsername,
		ErrInvalidNewPassword, ErrInvalidNewPhoneNo,
		ErrInvalidNewEmail, ErrInvalidNewUsername,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
