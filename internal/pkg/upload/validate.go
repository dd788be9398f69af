package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// The whitelist matches what the photo pipeline can actually decode;
// WebP stays out until a decoder is registered for it.
var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	// Note: SVG is intentionally excluded due to XSS risk without sanitization
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

var (
	ErrUnsupportedType = errors.New("only JPG, JPEG, PNG and GIF photos are supported")
	ErrScriptableType  = errors.New("HTML and SVG content is not allowed")
)

// ValidatePhotoBySniff checks the filename extension and the first bytes of
// the upload against a whitelist of image types. Returns the detected mime
// type or an error.
func ValidatePhotoBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedType
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", ErrScriptableType
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", ErrScriptableType
	}

	// Some encoders produce files DetectContentType cannot place; the
	// extension whitelist already passed, so let the decoder decide
	if detected == "application/octet-stream" {
		return detected, nil
	}

	if allowedMime[detected] {
		return detected, nil
	}

	return "", ErrUnsupportedType
}
