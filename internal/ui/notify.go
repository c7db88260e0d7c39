// Package ui contains the terminal-facing widgets of the client: transient
// notifications, the blocking loader, HTML partial loading, validators and
// image preview. Rendering is layered behind observer callbacks so the
// widgets stay testable without a terminal.
package ui

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultDisplayFor is how long a notification stays up before its dismiss
// timer fires.
const DefaultDisplayFor = 3 * time.Second

// Notifier is the narrow interface the rest of the client uses to surface
// messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warning(msg string)
	Info(msg string)
}

// Notification is one transient message. Each is an independent record:
// concurrent notifications stack, there is no dedup or queuing.
type Notification struct {
	ID        string
	Severity  Severity
	Message   string
	CreatedAt time.Time
}

// Center keeps the stack of active notifications and auto-dismisses each one
// after displayFor. onChange is invoked (with the center unlocked) after
// every mutation so a renderer can redraw.
type Center struct {
	mu         sync.Mutex
	active     []Notification
	displayFor time.Duration
	onChange   func([]Notification)

	// afterFunc is a test seam for time.AfterFunc.
	afterFunc func(d time.Duration, f func()) *time.Timer

	now func() time.Time
}

func NewCenter(displayFor time.Duration, onChange func([]Notification)) *Center {
	if displayFor <= 0 {
		displayFor = DefaultDisplayFor
	}
	return &Center{
		displayFor: displayFor,
		onChange:   onChange,
		afterFunc:  time.AfterFunc,
		now:        time.Now,
	}
}

// Notify inserts a notification and schedules its dismissal. The dismiss
// timer is fire-and-forget: two sequential notifications expire in whatever
// order their timers fire.
func (c *Center) Notify(severity Severity, msg string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   msg,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.active = append(c.active, n)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notifyChange(snapshot)

	c.afterFunc(c.displayFor, func() { c.dismiss(n.ID) })
	return n
}

// Active returns a copy of the currently displayed notifications.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Center) dismiss(id string) {
	c.mu.Lock()
	kept := c.active[:0]
	for _, n := range c.active {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.active = kept
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notifyChange(snapshot)
}

func (c *Center) snapshotLocked() []Notification {
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}

func (c *Center) notifyChange(snapshot []Notification) {
	if c.onChange != nil {
		c.onChange(snapshot)
	}
}

func (c *Center) Success(msg string) { c.Notify(SeveritySuccess, msg) }
func (c *Center) Error(msg string) { c.Notify(SeverityError, msg) }
func (c *Center) Warning(msg string) { c.Notify(SeverityWarning, msg) }
func (c *Center) Info(msg string) { c.Notify(SeverityInfo, msg) }
