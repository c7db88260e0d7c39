package ui

import (
	"encoding/base64"

	"github.com/gabriel-vasile/mimetype"
)

// ImageView is the display slot a preview lands in.
type ImageView interface {
	SetSource(dataURL string)
	Show()
}

// PreviewImage validates content and, when acceptable, assigns its data URL
// to view and unhides it. Returns whether a preview was shown.
func PreviewImage(content []byte, view ImageView, notify Notifier) bool {
	if !IsValidImageFile(content, notify) {
		return false
	}

	view.SetSource(DataURL(content))
	view.Show()
	return true
}

// DataURL encodes content as a base64 data URL with its sniffed MIME type.
func DataURL(content []byte) string {
	return "data:" + mimetype.Detect(content).String() + ";base64," +
		base64.StdEncoding.EncodeToString(content)
}
