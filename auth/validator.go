package auth

import (
	"unicode"

	"teamforge/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateUsername checks the account name rules. The username doubles
// as the public identity in preference lists, so it is kept short and
// plain.
func ValidateUsername(username string) error {
	return validate.Var(username, "required,alphanum,min=3,max=30")
}

// ValidatePassword checks length bounds and complexity.
func ValidatePassword(password string) error {
	if err := validate.Var(password, "required,min=12,max=72"); err != nil {
		return err
	}
	if !isPasswordComplex(password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
