package cli

import (
	"context"
	"fmt"

	"github.com/irisrec/irisctl/internal/common"
	"github.com/irisrec/irisctl/internal/enroll"
)

// Enroll drives the enrollment wizard interactively: personal data,
// validation, confirmation, iris capture (file or camera) and submission.
// The analysis pipeline is played before the final submit, matching the
// enrollment experience of the web client. Admin only.
func (a *App) Enroll(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	a.wizard.Open()
	defer a.wizard.Close()

	// step 1: personal data
	surname, err := getSimpleText(a.reader, "Nom", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Prénom", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Adresse email", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Rôle (user/admin, vide = user)", a.out)
	if err != nil {
		return err
	}

	a.wizard.SetPersonalInfo(surname, name, email)
	a.wizard.SetCredentials(role, "")

	if !a.wizard.ValidateUserData(ctx) {
		return nil
	}

	// step 2: recap before capture
	draft := a.wizard.Draft()
	fmt.Fprintf(a.out, "Récapitulatif : %s %s <%s>\n", draft.Name, draft.Surname, draft.Email)
	if !a.Confirm("Continuer vers la capture ?") {
		return nil
	}
	a.wizard.ConfirmAndContinue()

	// step 3: iris capture
	method, err := getSimpleText(a.reader, "Méthode de capture (fichier/camera)", a.out)
	if err != nil {
		return err
	}

	var frame []byte
	switch method {
	case "camera":
		a.wizard.ToggleCamera(ctx)
		if !a.wizard.CameraActive() {
			return common.ErrCameraUnavailable
		}
		frame, err = a.device.Capture()
		if err != nil {
			a.Error("Erreur lors de la capture")
			return err
		}
		a.pipeline.OnFinalize(func(ctx context.Context) error {
			if !a.wizard.CaptureAndEnroll(ctx) {
				return common.ErrEnrollmentFailed
			}
			return nil
		})

	default:
		var name string
		name, frame, err = getImageFile(a.reader, "Chemin de l'image de l'iris", a.out)
		if err != nil {
			a.Error(err.Error())
			return err
		}
		if !a.wizard.HandleFileUpload(name, frame) {
			return common.ErrInvalidImageType
		}
		a.pipeline.OnFinalize(func(ctx context.Context) error {
			if !a.wizard.CompleteEnrollment(ctx) {
				return common.ErrEnrollmentFailed
			}
			return nil
		})
	}

	if err := a.pipeline.Start(ctx, frame); err != nil {
		return err
	}
	if err := a.pipeline.FinalizeEnrollment(ctx); err != nil {
		return err
	}

	if a.wizard.Step() == enroll.StepSuccess {
		done := a.wizard.Draft()
		fmt.Fprintf(a.out, "Enrôlé : %s %s <%s> le %s\n", done.Name, done.Surname, done.Email, done.EnrollmentDate)
	}
	return nil
}
