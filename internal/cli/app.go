package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/irisrec/irisctl/internal/api"
	"github.com/irisrec/irisctl/internal/camera"
	"github.com/irisrec/irisctl/internal/config"
	"github.com/irisrec/irisctl/internal/enroll"
	"github.com/irisrec/irisctl/internal/events"
	"github.com/irisrec/irisctl/internal/filex"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/processing"
	"github.com/irisrec/irisctl/internal/services"
	"github.com/irisrec/irisctl/internal/session"
	"github.com/irisrec/irisctl/internal/ui"

	_ "modernc.org/sqlite"
)

// App wires configuration, the local session store, the API services and the
// interactive REPL. It also serves as the terminal rendering surface for
// notifications, the loader and the wizard, and implements session.Navigator
// and session.Confirmer for the guard.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	store session.Store
	guard *session.Guard

	auth  services.AuthService
	users services.UserService
	iris  services.IrisService
	logs  services.LogService
	stats services.StatsService
	admin services.AdminService

	notify   *ui.Center
	loader   *ui.Loader
	device   camera.Device
	bus      *events.Bus
	wizard   *enroll.Wizard
	pipeline *processing.Pipeline

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {

	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr)

	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		log.Error(ctx, "error preparing data directory", "error", err)
		return nil, err
	}

	db, err := session.InitDatabase(ctx, filepath.Join(dataDir, "session.db"))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.New(cfg.BaseURL, cfg.Timeout, store)

	a := &App{
		config: cfg,
		log:    log,
		db:     db,
		store:  store,
		auth:   services.NewAuthService(apiClient, store, log),
		users:  services.NewUserService(apiClient, log),
		iris:   services.NewIrisService(apiClient, log),
		logs:   services.NewLogService(apiClient, log),
		stats:  services.NewStatsService(apiClient, log),
		admin:  services.NewAdminService(apiClient, log),
		device: camera.NewFrameFileDevice(filepath.Join(dataDir, camera.CaptureName)),
		bus:    events.NewBus(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	a.notify = ui.NewCenter(ui.DefaultDisplayFor, nil)
	a.loader = ui.NewLoader(a.renderLoader)
	a.guard = session.NewGuard(store, a, a)
	a.wizard = enroll.NewWizard(a.users, a, a.bus, a.device, log)
	a.pipeline = processing.NewPipeline(log)
	a.pipeline.OnChange(a.renderPipeline)

	a.bus.Subscribe(events.TopicUserAdded, func(payload any) {
		a.log.Info(ctx, "user enrolled", "draft", payload)
	})
	a.bus.Subscribe(events.TopicOpenAddUser, func(any) {
		a.wizard.Open()
	})
	a.bus.Subscribe(events.TopicSessionEnded, func(any) {
		a.log.Info(ctx, "session ended")
	})

	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated(context.Background())
}

// Success et al. render notifications to the terminal and keep them in the
// notification center so the auto-dismiss behavior stays observable.
func (a *App) Success(msg string) { a.notify.Success(msg); a.renderToast(ui.SeveritySuccess, msg) }

func (a *App) Error(msg string) { a.notify.Error(msg); a.renderToast(ui.SeverityError, msg) }

func (a *App) Warning(msg string) { a.notify.Warning(msg); a.renderToast(ui.SeverityWarning, msg) }

func (a *App) Info(msg string) { a.notify.Info(msg); a.renderToast(ui.SeverityInfo, msg) }

func (a *App) renderToast(severity ui.Severity, msg string) {
	fmt.Fprintf(a.out, "[%s] %s\n", severity, msg)
}

func (a *App) renderLoader(visible bool, message string) {
	if visible {
		fmt.Fprintf(a.out, "... %s\n", message)
	}
}

// renderPipeline prints a one-line progress view after each stage transition.
func (a *App) renderPipeline() {
	stages := a.pipeline.Stages()
	marks := make([]string, 0, len(stages))
	for _, s := range stages {
		switch s.Status {
		case processing.StatusCompleted:
			marks = append(marks, s.Name+" ✓")
		case processing.StatusProcessing:
			marks = append(marks, s.Name+" ...")
		default:
			marks = append(marks, s.Name)
		}
	}
	fmt.Fprintf(a.out, "[%3d%%] %s\n", a.pipeline.Progress(), strings.Join(marks, " | "))
}

// GotoLogin implements session.Navigator.
func (a *App) GotoLogin() {
	fmt.Fprintln(a.out, "Veuillez vous connecter (commande: login ou irislogin).")
}

// GotoUserHome implements session.Navigator.
func (a *App) GotoUserHome() {
	fmt.Fprintln(a.out, "Accès réservé aux administrateurs.")
}

// Confirm implements session.Confirmer with an o/n terminal prompt.
func (a *App) Confirm(prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt+" (o/n)", a.out)
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "o" || answer == "oui" || answer == "y"
}
