package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jpegHead = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
var pngHead = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func TestValidatePhotoBySniff(t *testing.T) {
	mime, err := ValidatePhotoBySniff("trash.jpg", jpegHead)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)

	mime, err = ValidatePhotoBySniff("bin.PNG", pngHead)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
}

func TestValidatePhotoRejectsUndecodableFormats(t *testing.T) {
	// WebP sniffs cleanly but no decoder is registered for it, so it must
	// not pass validation only to fail deep in the photo pipeline
	webpHead := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00)
	webpHead = append(webpHead, []byte("WEBPVP8 ")...)

	_, err := ValidatePhotoBySniff("photo.webp", webpHead)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ValidatePhotoBySniff("photo.avif", []byte{0x00, 0x00, 0x00, 0x20, 'f', 't', 'y', 'p'})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidatePhotoRejectsBadExtension(t *testing.T) {
	_, err := ValidatePhotoBySniff("report.pdf", jpegHead)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ValidatePhotoBySniff("noext", jpegHead)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidatePhotoRejectsScriptableContent(t *testing.T) {
	_, err := ValidatePhotoBySniff("sneaky.jpg", []byte("<html><script>alert(1)</script>"))
	assert.ErrorIs(t, err, ErrScriptableType)

	_, err = ValidatePhotoBySniff("vector.png", []byte(`<?xml version="1.0"?><svg></svg>`))
	assert.ErrorIs(t, err, ErrScriptableType)
}

func TestValidatePhotoMismatchedContent(t *testing.T) {
	_, err := ValidatePhotoBySniff("fake.jpg", []byte("just plain text, nothing image-like"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
