package password

import (
	"errors"
	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for every stored credential.
const Cost = 10

// MaxLength is the number of bytes bcrypt reads. Longer passwords are cut
// to this length on both Hash and Compare.
const MaxLength = 72

var ErrMismatch = errors.New("password does not match")

func Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(raw), Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Compare reports ErrMismatch when raw is not the password behind hash.
// Any other error means hash itself is unusable.
func Compare(hash, raw string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncate(raw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}

	return err
}

func truncate(raw string) []byte {
	b := []byte(raw)
	if len(b) > MaxLength {
		return b[:MaxLength]
	}
	return b
}
