package cli

import (
	"context"
	"fmt"

	"github.com/irisrec/irisctl/internal/common"
	"github.com/irisrec/irisctl/internal/timex"
)

// Users lists every registered user. Admin only.
func (a *App) Users(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	resp, err := a.users.All(ctx)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	for _, u := range resp.Users {
		fmt.Fprintf(a.out, "%4d  %-15s %-15s %-30s %s\n", u.ID, u.Surname, u.Name, u.Email, u.Role)
	}
	fmt.Fprintf(a.out, "%d utilisateur(s)\n", resp.Total)
	return nil
}

// ShowUser prints a single user together with their recent activity. Admin only.
func (a *App) ShowUser(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	id, err := GetID(a.reader, "Identifiant utilisateur", a.out)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	resp, err := a.users.ByID(ctx, id)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	u := resp.User
	fmt.Fprintf(a.out, "%s %s <%s> rôle %s\n", u.Name, u.Surname, u.Email, u.Role)

	if stats, err := a.stats.ForUser(ctx, id); err == nil {
		fmt.Fprintf(a.out, "Authentifications : %d (réussies : %d)\n", stats.Attempts, stats.Successes)
		if stats.LastLogin != nil {
			fmt.Fprintf(a.out, "Dernière connexion : %s\n", timex.FormatShort(*stats.LastLogin))
		}
	}
	if records, err := a.iris.ByUser(ctx, id); err == nil && records.Total > 0 {
		fmt.Fprintf(a.out, "Iris enregistrés : %d (dernier : %s)\n",
			records.Total, timex.FormatShort(records.Records[len(records.Records)-1].EnrolledDate))
	}
	if history, err := a.logs.ByUser(ctx, id); err == nil {
		for _, l := range history.Logs {
			outcome := "échec"
			if l.Success {
				outcome = "succès"
			}
			fmt.Fprintf(a.out, "  %s  %-10s %s\n", timex.FormatShort(l.Timestamp), l.Method, outcome)
		}
	}
	return nil
}

// Profile shows the administrator profile and optionally updates the display
// identity. Admin only.
func (a *App) Profile(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	profile, err := a.admin.Profile(ctx)
	if err != nil {
		a.Error(err.Error())
		return err
	}
	fmt.Fprintf(a.out, "%s %s <%s>\n", profile.Name, profile.Surname, profile.Email)

	if !a.Confirm("Modifier le profil ?") {
		return nil
	}

	surname, err := getSimpleText(a.reader, fmt.Sprintf("Nom [%s]", profile.Surname), a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, fmt.Sprintf("Prénom [%s]", profile.Name), a.out)
	if err != nil {
		return err
	}
	if surname == "" {
		surname = profile.Surname
	}
	if name == "" {
		name = profile.Name
	}

	resp, err := a.admin.UpdateProfile(ctx, surname, name)
	if err != nil {
		a.Error(err.Error())
		return err
	}
	if !resp.Success {
		a.Error(resp.Message)
		return nil
	}

	a.Success(resp.Message)
	return nil
}

// UpdateUser edits a user's identity fields. Empty answers keep the current
// values. Admin only.
func (a *App) UpdateUser(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	id, err := GetID(a.reader, "Identifiant utilisateur", a.out)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	current, err := a.users.ByID(ctx, id)
	if err != nil {
		a.Error(err.Error())
		return err
	}
	u := *current.User

	if v, err := getSimpleText(a.reader, fmt.Sprintf("Nom [%s]", u.Surname), a.out); err == nil && v != "" {
		u.Surname = v
	}
	if v, err := getSimpleText(a.reader, fmt.Sprintf("Prénom [%s]", u.Name), a.out); err == nil && v != "" {
		u.Name = v
	}
	if v, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", u.Email), a.out); err == nil && v != "" {
		u.Email = v
	}
	if v, err := getSimpleText(a.reader, fmt.Sprintf("Rôle [%s]", u.Role), a.out); err == nil && v != "" {
		u.Role = v
	}

	if _, err := a.users.Update(ctx, id, u); err != nil {
		a.Error(err.Error())
		return err
	}

	a.Success("Utilisateur mis à jour avec succès !")
	return nil
}

// DeleteUser removes a user after confirmation. Admin only.
func (a *App) DeleteUser(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	id, err := GetID(a.reader, "Identifiant utilisateur", a.out)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	if !a.Confirm("Êtes-vous sûr de vouloir supprimer cet utilisateur ?") {
		return nil
	}

	resp, err := a.users.Delete(ctx, id)
	if err != nil {
		a.Error(err.Error())
		return err
	}
	if !resp.OK() {
		a.Error(resp.Message)
		return nil
	}

	a.Success("Utilisateur supprimé avec succès !")
	return nil
}
