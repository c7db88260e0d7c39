package ui

import "sync"

// loaderID is the fixed identifier of the single blocking overlay; only one
// loader exists at a time.
const loaderID = "global-loader"

// DefaultLoaderMessage is shown when Show is called with an empty message.
const DefaultLoaderMessage = "Chargement..."

// Loader is the full-screen blocking overlay shown during long operations.
type Loader struct {
	mu       sync.Mutex
	visible  bool
	message  string
	onChange func(visible bool, message string)
}

func NewLoader(onChange func(visible bool, message string)) *Loader {
	return &Loader{onChange: onChange}
}

// Show displays the overlay with the given message. Calling Show while
// already visible replaces the message rather than stacking a second
// overlay.
func (l *Loader) Show(message string) {
	if message == "" {
		message = DefaultLoaderMessage
	}

	l.mu.Lock()
	l.visible = true
	l.message = message
	l.mu.Unlock()

	l.changed()
}

// Hide removes the overlay. Hiding an absent loader is a no-op.
func (l *Loader) Hide() {
	l.mu.Lock()
	if !l.visible {
		l.mu.Unlock()
		return
	}
	l.visible = false
	l.message = ""
	l.mu.Unlock()

	l.changed()
}

// Visible reports whether the overlay is up.
func (l *Loader) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible
}

// ID returns the fixed overlay identifier.
func (l *Loader) ID() string { return loaderID }

func (l *Loader) changed() {
	if l.onChange != nil {
		l.mu.Lock()
		visible, message := l.visible, l.message
		l.mu.Unlock()
		l.onChange(visible, message)
	}
}
