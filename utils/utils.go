package utils

import (
	rndm "math/rand"
	"strings"

	"github.com/google/uuid"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var idRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateID creates a lowercase alphanumeric id of length n.
func GenerateID(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = idRunes[rndm.Intn(len(idRunes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

// Paginate returns the page-th slice of items (1-based), at most limit long.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// --- Matching ---

// ContainsSubstring reports whether s contains q, case-insensitively.
// Literal match only; no tokenization or ranking.
func ContainsSubstring(s, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}
