package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GetGravatarURL builds the Gravatar URL for an email address. Size falls
// back to 80px, the "mp" default serves a neutral silhouette for accounts
// without a Gravatar profile.
func GetGravatarURL(email string, size int) string {
	if size <= 0 {
		size = 80
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, size)
}
