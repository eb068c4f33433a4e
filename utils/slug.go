package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

const slugAttempts = 10

// ErrSlugExhausted is returned when every generated slug candidate
// collided with an existing one.
var ErrSlugExhausted = errors.New("could not generate a unique slug")

// Slugify lowercases the title, collapses every run of
// non-alphanumeric characters into a single hyphen and strips
// leading/trailing hyphens.
func Slugify(title string) string {
	var b strings.Builder
	hyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// GenerateSlug derives a slug from the title and appends a random
// 6-character hex suffix, retrying with a fresh suffix while the
// candidate already exists. After slugAttempts collisions it gives up
// with ErrSlugExhausted.
func GenerateSlug(title string, exists func(slug string) (bool, error)) (string, error) {
	base := Slugify(title)

	for i := 0; i < slugAttempts; i++ {
		suffix, err := randomHex(3)
		if err != nil {
			return "", err
		}

		candidate := base + "-" + suffix
		if base == "" {
			candidate = suffix
		}

		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", ErrSlugExhausted
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
