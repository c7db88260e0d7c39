// Package camera abstracts the live capture device used by the enrollment
// wizard. The device is an exclusively-owned handle: one active stream at a
// time, released explicitly on every exit path.
package camera

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/irisrec/irisctl/internal/common"
)

// CaptureName is the file name given to frames captured from the device.
const CaptureName = "iris-capture.jpg"

// Device is a capture source for still frames.
type Device interface {
	// Start acquires the stream. Starting an already active device is an
	// error — the handle is exclusive.
	Start(ctx context.Context) error

	// Stop releases the stream. Stopping an inactive device is a no-op, so
	// callers can stop unconditionally on every exit path.
	Stop()

	// Capture grabs a still frame from the active stream.
	Capture() ([]byte, error)

	// Active reports whether the stream is currently held.
	Active() bool
}

// FrameFileDevice is a Device backed by a frame file on disk, for
// environments without a video stack: an external grabber (or the user)
// drops a frame at Path and Capture reads it.
type FrameFileDevice struct {
	Path string

	mu     sync.Mutex
	active bool
}

func NewFrameFileDevice(path string) *FrameFileDevice {
	return &FrameFileDevice{Path: path}
}

func (d *FrameFileDevice) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.active {
		return fmt.Errorf("%w: flux déjà actif", common.ErrCameraUnavailable)
	}
	if _, err := os.Stat(d.Path); err != nil {
		return fmt.Errorf("%w: %v", common.ErrCameraUnavailable, err)
	}
	d.active = true
	return nil
}

func (d *FrameFileDevice) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = false
}

func (d *FrameFileDevice) Capture() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.active {
		return nil, common.ErrCameraInactive
	}
	frame, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCameraUnavailable, err)
	}
	return frame, nil
}

func (d *FrameFileDevice) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}
