package validators

import "errors"

var (
	ErrPasswordEmpty   = errors.New("no password provided")
	ErrPasswordTooLong = errors.New("password is too long")
)

// PasswordValidator only rejects empty or absurdly long passwords.
// There's deliberately no minimum length or character class rule.
func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) > 255 {
		return ErrPasswordTooLong
	}

	return nil
}
