package ui

import (
	"regexp"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize is the upload limit for iris images.
const MaxImageSize = 5 * 1024 * 1024 // 5 MB

// emailRe enforces the local@domain.tld shape: no whitespace or extra '@',
// and the domain must contain a dot.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email has the expected shape. Deliverability
// is not checked; the backend revalidates anyway.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidImageFile checks that content is an acceptable iris image: a
// JPEG/PNG/BMP (sniffed from the bytes, not the file name) of at most
// MaxImageSize. Each failure emits its specific notification and returns
// false.
func IsValidImageFile(content []byte, notify Notifier) bool {
	m := mimetype.Detect(content)
	if !m.Is("image/jpeg") && !m.Is("image/png") && !m.Is("image/bmp") {
		notify.Error("Format d'image non supporté. Utilisez JPG, PNG ou BMP.")
		return false
	}

	if len(content) > MaxImageSize {
		notify.Error("L'image est trop volumineuse (max 5 MB).")
		return false
	}

	return true
}
