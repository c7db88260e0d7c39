// Package enroll implements the multi-step enrollment wizard: personal data
// entry, confirmation, iris capture (file upload or live camera) and
// submission. The wizard is driven from a single goroutine — the event loop
// of the CLI — and holds no locks of its own.
package enroll

import (
	"context"
	"strings"
	"time"

	"github.com/irisrec/irisctl/internal/camera"
	"github.com/irisrec/irisctl/internal/events"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/models"
	"github.com/irisrec/irisctl/internal/services"
	"github.com/irisrec/irisctl/internal/timex"
	"github.com/irisrec/irisctl/internal/ui"
)

// Step identifies the wizard's current screen.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepConfirmation
	StepCapture
	StepSuccess
)

// ScanMethod tags how the iris image was obtained.
type ScanMethod string

const (
	MethodUpload ScanMethod = "upload"
	MethodCamera ScanMethod = "camera"
)

// Wizard coordinates the add-user flow. Reopening resets every field and
// forces the first step; closing always releases the camera.
type Wizard struct {
	users  services.UserService
	notify ui.Notifier
	bus    *events.Bus
	device camera.Device
	log    logging.Logger

	// now is a test seam for the enrollment timestamp.
	now func() time.Time

	open     bool
	step     Step
	draft    models.EnrollmentDraft
	method   ScanMethod
	file     []byte
	fileName string
}

func NewWizard(users services.UserService, notify ui.Notifier, bus *events.Bus, device camera.Device, log logging.Logger) *Wizard {
	return &Wizard{
		users:  users,
		notify: notify,
		bus:    bus,
		device: device,
		log:    log,
		now:    time.Now,
		step:   StepPersonalInfo,
		method: MethodUpload,
	}
}

// Open shows the wizard, wiping any previous state.
func (w *Wizard) Open() {
	w.open = true
	w.reset()
}

// Close hides the wizard. The camera is stopped first, on every exit path.
func (w *Wizard) Close() {
	w.device.Stop()
	w.open = false
	w.reset()
}

func (w *Wizard) reset() {
	w.draft = models.EnrollmentDraft{}
	w.file = nil
	w.fileName = ""
	w.method = MethodUpload
	w.step = StepPersonalInfo
}

func (w *Wizard) IsOpen() bool { return w.open }

func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) Draft() models.EnrollmentDraft { return w.draft }

func (w *Wizard) Method() ScanMethod { return w.method }

func (w *Wizard) CameraActive() bool { return w.device.Active() }

// SetPersonalInfo fills the step-1 fields.
func (w *Wizard) SetPersonalInfo(surname, name, email string) {
	w.draft.Surname = strings.TrimSpace(surname)
	w.draft.Name = strings.TrimSpace(name)
	w.draft.Email = strings.TrimSpace(email)
}

// SetCredentials fills the optional role and password. An empty role enrolls
// a regular user; an empty password lets the backend generate one.
func (w *Wizard) SetCredentials(role, password string) {
	w.draft.Role = strings.TrimSpace(role)
	w.draft.Password = password
}

// ValidateUserData guards the 1→2 transition: required fields, email shape,
// then a server-side uniqueness check. On any violation a notification is
// shown and the wizard stays at step 1. Returns whether it advanced.
func (w *Wizard) ValidateUserData(ctx context.Context) bool {
	if w.draft.Surname == "" || w.draft.Name == "" || w.draft.Email == "" {
		w.notify.Error("Veuillez remplir tous les champs obligatoires")
		return false
	}
	if !ui.IsValidEmail(w.draft.Email) {
		w.notify.Error("Veuillez entrer une adresse email valide")
		return false
	}

	exists, err := w.users.CheckEmail(ctx, w.draft.Email)
	if err != nil {
		w.log.Error(ctx, "email uniqueness check failed", "error", err)
		w.notify.Error("Erreur lors de la vérification. Réessayez.")
		return false
	}
	if exists {
		w.notify.Error("Cet email est déjà utilisé. Veuillez en choisir un autre.")
		return false
	}

	w.step = StepConfirmation
	return true
}

// ConfirmAndContinue is the unconditional 2→3 transition.
func (w *Wizard) ConfirmAndContinue() {
	w.notify.Success("Informations validées !")
	w.step = StepCapture
}

// HandleFileUpload stores a validated image for the upload path. An invalid
// file is rejected with its own notification and the previous selection is
// kept.
func (w *Wizard) HandleFileUpload(name string, content []byte) bool {
	if !ui.IsValidImageFile(content, w.notify) {
		return false
	}
	w.file = content
	w.fileName = name
	w.method = MethodUpload
	return true
}

// UploadedFileName returns the name of the currently selected file, or "".
func (w *Wizard) UploadedFileName() string { return w.fileName }

// ToggleCamera starts the capture device when inactive and stops it when
// active. Acquisition failures surface as a notification.
func (w *Wizard) ToggleCamera(ctx context.Context) {
	if w.device.Active() {
		w.device.Stop()
		return
	}
	if err := w.device.Start(ctx); err != nil {
		w.log.Error(ctx, "camera start failed", "error", err)
		w.notify.Error("Impossible d'accéder à la caméra")
	}
}

// CompleteEnrollment submits the upload path: it requires a previously
// selected file. Returns whether the wizard reached the success step.
func (w *Wizard) CompleteEnrollment(ctx context.Context) bool {
	if w.file == nil {
		return false
	}
	return w.submit(ctx)
}

// CaptureAndEnroll submits the camera path: it grabs a still frame from the
// active stream, releases the camera, then enrolls with the frame.
func (w *Wizard) CaptureAndEnroll(ctx context.Context) bool {
	if !w.device.Active() {
		return false
	}

	frame, err := w.device.Capture()
	if err != nil {
		w.log.Error(ctx, "frame capture failed", "error", err)
		w.notify.Error("Erreur lors de la capture")
		return false
	}
	w.device.Stop()

	w.file = frame
	w.fileName = camera.CaptureName
	w.method = MethodCamera
	return w.submit(ctx)
}

// submit performs the enroll call and, on a success status, the step-4
// transition: enrollment timestamp, success step, user-added broadcast and
// success notification. On failure the wizard stays at the capture step.
func (w *Wizard) submit(ctx context.Context) bool {
	resp, err := w.users.Enroll(ctx, w.draft, w.fileName, w.file)
	if err != nil {
		w.notifyFailure(err.Error())
		return false
	}
	if !resp.OK() {
		w.notifyFailure(resp.Message)
		return false
	}

	w.draft.EnrollmentDate = timex.FormatLong(w.now())
	w.step = StepSuccess
	w.bus.Publish(events.TopicUserAdded, w.draft)
	w.notify.Success("Utilisateur enrôlé avec succès !")
	return true
}

func (w *Wizard) notifyFailure(msg string) {
	if msg == "" {
		msg = "Erreur lors de l'enrôlement"
	}
	w.notify.Error(msg)
}
