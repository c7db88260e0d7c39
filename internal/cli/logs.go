package cli

import (
	"context"
	"fmt"

	"github.com/irisrec/irisctl/internal/common"
	"github.com/irisrec/irisctl/internal/timex"
)

// Logs prints the authentication history. Admin only.
func (a *App) Logs(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	resp, err := a.logs.All(ctx)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	for _, l := range resp.Logs {
		outcome := "échec"
		if l.Success {
			outcome = "succès"
		}
		who := "?"
		if l.User != nil {
			who = l.User.Email
		}
		fmt.Fprintf(a.out, "%s  %-30s %-10s %s\n", timex.FormatShort(l.Timestamp), who, l.Method, outcome)
	}
	fmt.Fprintf(a.out, "%d entrée(s)\n", resp.Total)
	return nil
}

// Stats prints the dashboard counters. Admin only.
func (a *App) Stats(ctx context.Context) error {
	if !a.guard.RequireAdmin(ctx) {
		return common.ErrNotAdmin
	}

	resp, err := a.stats.Dashboard(ctx)
	if err != nil {
		a.Error(err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Utilisateurs        : %d\n", resp.TotalUsers)
	fmt.Fprintf(a.out, "Iris enregistrés    : %d\n", resp.TotalIris)
	fmt.Fprintf(a.out, "Authentifications   : %d\n", resp.TotalAttempts)
	fmt.Fprintf(a.out, "Échecs              : %d\n", resp.FailedAttempts)
	return nil
}
