package blob

import (
	"crypto/rand"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	illegalRe    = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	underscoreRe = regexp.MustCompile(`_+`)
	keyRe        = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// NewKey derives a storage key from an uploaded file's original name.
// The stem is reduced to [A-Za-z0-9_-] (whitespace becomes underscores,
// runs collapse, edges trimmed, empty falls back to "file"), a random
// 6-hex-char suffix guarantees uniqueness across uploads sharing a display
// name, and the lower-cased extension is preserved (.pdf when absent).
func NewKey(original string) (string, error) {
	stem := sanitizeStem(original)

	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".pdf"
	}

	return stem + "_" + hex.EncodeToString(suffix) + ext, nil
}

func sanitizeStem(original string) string {
	base := filepath.Base(original)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	stem = whitespaceRe.ReplaceAllString(stem, "_")
	stem = illegalRe.ReplaceAllString(stem, "")
	stem = underscoreRe.ReplaceAllString(stem, "_")
	stem = strings.Trim(stem, "_")

	if stem == "" {
		stem = "file"
	}

	return stem
}

// ValidKey reports whether key is a sanitizer-shaped name, with no path
// separators or traversal. Backends that touch the filesystem check this
// before using a caller-supplied key.
func ValidKey(key string) bool {
	return key != "" && key != "." && key != ".." &&
		!strings.Contains(key, "..") && keyRe.MatchString(key)
}
