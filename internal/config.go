// Package internal holds the server configuration and the operator
// debug tooling.
package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host string `env:"HOST,default=localhost"`
	Port int    `env:"PORT,default=8080"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	BannedWordsDir  string `env:"BANNED_WORDS_DIR,required=true"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`

	// DebugPort enables the read-only store inspector when set.
	DebugPort int `env:"DEBUG_PORT"`
}

// CharacterRune rejects multi-character replacement settings early.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
