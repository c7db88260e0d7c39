package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingNotifier captures emitted notifications for assertions.
type recordingNotifier struct {
	errors   []string
	warnings []string
	infos    []string
	successs []string
}

func (r *recordingNotifier) Success(msg string) { r.successs = append(r.successs, msg) }
func (r *recordingNotifier) Error(msg string) { r.errors = append(r.errors, msg) }
func (r *recordingNotifier) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recordingNotifier) Info(msg string) { r.infos = append(r.infos, msg) }

func fakeImage(magic []byte, size int) []byte {
	b := make([]byte, size)
	copy(b, magic)
	return b
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0}
	bmpMagic  = []byte{'B', 'M'}
	pdfMagic  = []byte("%PDF-1.4")
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"claire.dupont@exemple.fr", true},
		{"a@b", false},
		{"a.com", false},
		{"", false},
		{"a b@c.fr", false},
		{"a@b@c.fr", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, IsValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsValidImageFile(t *testing.T) {
	t.Run("accepts 1 MiB JPEG", func(t *testing.T) {
		n := &recordingNotifier{}
		require.True(t, IsValidImageFile(fakeImage(jpegMagic, 1<<20), n))
		require.Empty(t, n.errors)
	})

	t.Run("accepts BMP", func(t *testing.T) {
		n := &recordingNotifier{}
		require.True(t, IsValidImageFile(fakeImage(bmpMagic, 1024), n))
	})

	t.Run("rejects 6 MiB PNG", func(t *testing.T) {
		n := &recordingNotifier{}
		require.False(t, IsValidImageFile(fakeImage(pngMagic, 6<<20), n))
		require.Len(t, n.errors, 1)
		require.Contains(t, n.errors[0], "volumineuse")
	})

	t.Run("rejects PDF", func(t *testing.T) {
		n := &recordingNotifier{}
		require.False(t, IsValidImageFile(fakeImage(pdfMagic, 1024), n))
		require.Len(t, n.errors, 1)
		require.Contains(t, n.errors[0], "Format d'image non supporté")
	})
}

type fakeImageView struct {
	source string
	shown  bool
}

func (f *fakeImageView) SetSource(dataURL string) { f.source = dataURL }
func (f *fakeImageView) Show() { f.shown = true }

func TestPreviewImage(t *testing.T) {
	t.Run("valid image previewed as data URL", func(t *testing.T) {
		view := &fakeImageView{}
		n := &recordingNotifier{}

		require.True(t, PreviewImage(fakeImage(pngMagic, 1024), view, n))
		require.True(t, view.shown)
		require.Contains(t, view.source, "data:image/png;base64,")
	})

	t.Run("invalid image leaves view untouched", func(t *testing.T) {
		view := &fakeImageView{}
		n := &recordingNotifier{}

		require.False(t, PreviewImage(fakeImage(pdfMagic, 1024), view, n))
		require.False(t, view.shown)
		require.Empty(t, view.source)
	})
}
