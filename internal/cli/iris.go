package cli

import (
	"context"
	"fmt"

	"github.com/irisrec/irisctl/internal/common"
	"github.com/irisrec/irisctl/internal/timex"
	"github.com/irisrec/irisctl/internal/ui"
)

// IrisRecords lists the enrolled iris templates. Admin only.
func (a *App) IrisRecords(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	resp, err := a.iris.Records(ctx)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	for _, r := range resp.Records {
		owner := "?"
		if r.User != nil {
			owner = r.User.Email
		}
		fmt.Fprintf(a.out, "%4d  %-30s %s  %s\n", r.ID, owner, timex.FormatShort(r.EnrolledDate), r.ImagePath)
	}
	fmt.Fprintf(a.out, "%d enregistrement(s)\n", resp.Total)
	return nil
}

// Compare submits two iris images and reports whether they match.
func (a *App) Compare(ctx context.Context) error {
	if !a.guard.RequireAuth(ctx) {
		return common.ErrNotAuthenticated
	}

	name1, image1, err := getImageFile(a.reader, "Première image", a.out)
	if err != nil {
		a.Error(err.Error())
		return err
	}
	if !ui.IsValidImageFile(image1, a) {
		return common.ErrInvalidImageType
	}

	name2, image2, err := getImageFile(a.reader, "Seconde image", a.out)
	if err != nil {
		a.Error(err.Error())
		return err
	}
	if !ui.IsValidImageFile(image2, a) {
		return common.ErrInvalidImageType
	}

	a.loader.Show("Comparaison en cours...")
	resp, err := a.iris.Compare(ctx, name1, image1, name2, image2)
	a.loader.Hide()

	if err != nil {
		a.Error(err.Error())
		return err
	}

	if resp.Match {
		a.Success(fmt.Sprintf("Les iris correspondent (distance %.4f)", resp.Distance))
	} else {
		a.Warning(fmt.Sprintf("Les iris ne correspondent pas (distance %.4f)", resp.Distance))
	}
	return nil
}
