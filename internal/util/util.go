// Package util provides utility functions for content hashing and slug derivation.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

var nonWordRun = regexp.MustCompile(`\W+`)

func ContentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func ContentHashString(content string) string {
	return ContentHash([]byte(content))
}

// Slugify derives a filesystem-safe identifier from a title: lower-cased,
// every maximal run of non-word characters collapsed to a single hyphen,
// leading and trailing hyphens trimmed. Idempotent.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWordRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
