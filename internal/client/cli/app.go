// Package cli is the interactive Teamspace client: a screen-oriented REPL
// over the session manager, the navigation state machine, the photo gallery
// and the chat & budget engine. All mutable state lives on the App; nothing
// is ambient.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	budgetpkg "teamspace/internal/client/budget"
	"teamspace/internal/client/busy"
	"teamspace/internal/client/chat"
	"teamspace/internal/client/config"
	"teamspace/internal/client/gallery"
	"teamspace/internal/client/models"
	"teamspace/internal/client/session"
	"teamspace/internal/client/store"
	"teamspace/internal/client/voice"
	"teamspace/internal/logging"
)

// Screen is the tagged navigation state. The machine runs for the life of
// the process; there is no terminal state.
type Screen int

const (
	ScreenLoggedOut Screen = iota
	ScreenTeamList
	ScreenTeamDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenLoggedOut:
		return "logged-out"
	case ScreenTeamList:
		return "teams"
	case ScreenTeamDetail:
		return "team"
	}
	return "unknown"
}

// ErrLoadPending refuses a transition whose target screen still has its
// entry load in flight.
var ErrLoadPending = errors.New("previous load still pending")

// ErrNoSuchTeam rejects a team selection outside the cached list.
var ErrNoSuchTeam = errors.New("no such team")

type App struct {
	cfg    *config.Config
	logger logging.Logger
	out    io.Writer
	reader *bufio.Reader

	client     store.Client
	sessions   *session.Manager
	gallery    *gallery.Controller
	chatEngine *chat.Engine
	tracker    *busy.Tracker
	recognizer voice.Recognizer

	screen      Screen
	currentTeam *models.Team
	teams       []models.Team

	mu      sync.Mutex
	pending map[Screen]bool
}

// NewApp wires the client together against a live HTTP store.
func NewApp(cfg *config.Config) *App {
	client := store.NewHTTPClient(cfg.ServerAddr, cfg.RequestTimeout)
	logger := logging.NewText(os.Stderr)
	return newApp(cfg, client, logger, os.Stdin, os.Stdout)
}

// newApp is the assembly seam shared with tests.
func newApp(cfg *config.Config, client store.Client, logger logging.Logger, in io.Reader, out io.Writer) *App {
	tracker := busy.New(nil)
	cache := budgetpkg.NewCache(cfg.BudgetFile)

	a := &App{
		cfg:        cfg,
		logger:     logger,
		out:        out,
		reader:     bufio.NewReader(in),
		client:     client,
		sessions:   session.NewManager(cfg.SessionFile, client, logger),
		chatEngine: chat.New(client, logger, tracker, cache),
		tracker:    tracker,
		recognizer: voice.Disabled{},
		screen:     ScreenLoggedOut,
		pending:    map[Screen]bool{},
	}
	a.gallery = gallery.New(client, logger, tracker, cfg.SlideshowInterval, a.confirmPrompt)
	return a
}

// SetRecognizer replaces the voice input adapter.
func (a *App) SetRecognizer(r voice.Recognizer) {
	a.recognizer = r
}

// Screen returns the active navigation state.
func (a *App) Screen() Screen {
	return a.screen
}

// CurrentTeam returns the focused team on the detail screen.
func (a *App) CurrentTeam() (models.Team, bool) {
	if a.currentTeam == nil {
		return models.Team{}, false
	}
	return *a.currentTeam, true
}

// Teams returns the cached team list.
func (a *App) Teams() []models.Team {
	return append([]models.Team(nil), a.teams...)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().Authenticated()
}

// Start derives the initial screen from the persisted session: a restored
// session lands on the team list, otherwise on the login screen.
func (a *App) Start(ctx context.Context) {
	if a.sessions.Restore().Authenticated() {
		if err := a.enterTeamList(ctx); err != nil {
			a.logger.Warn(ctx, "could not enter team list", "error", err)
		}
		return
	}
	a.screen = ScreenLoggedOut
}

func (a *App) beginLoad(target Screen) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending[target] {
		return ErrLoadPending
	}
	a.pending[target] = true
	return nil
}

func (a *App) endLoad(target Screen) {
	a.mu.Lock()
	a.pending[target] = false
	a.mu.Unlock()
}

// enterTeamList loads the session user's teams and shows the list screen.
// The load follows the read policy: failures degrade to an empty list.
func (a *App) enterTeamList(ctx context.Context) error {
	if err := a.beginLoad(ScreenTeamList); err != nil {
		return err
	}
	defer a.endLoad(ScreenTeamList)

	a.tracker.Begin()
	teams, err := a.client.ListTeams(ctx, a.sessions.Current().Email)
	a.tracker.End()
	if err != nil {
		a.logger.Warn(ctx, "team load failed, showing empty list", "error", err)
		teams = nil
	}

	a.teams = teams
	a.currentTeam = nil
	a.screen = ScreenTeamList
	return nil
}

// OpenTeam focuses a team and fires the three entry loads (photos,
// messages, budget) concurrently before showing the detail screen.
func (a *App) OpenTeam(ctx context.Context, index int) error {
	if index < 0 || index >= len(a.teams) {
		return ErrNoSuchTeam
	}
	if err := a.beginLoad(ScreenTeamDetail); err != nil {
		return err
	}
	defer a.endLoad(ScreenTeamDetail)

	team := a.teams[index]
	a.currentTeam = &team
	a.chatEngine.Open(team.ID, a.sessions.Current().Email)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		a.gallery.Load(ctx, team.ID)
	}()
	go func() {
		defer wg.Done()
		a.chatEngine.LoadMessages(ctx)
	}()
	go func() {
		defer wg.Done()
		a.chatEngine.LoadBudget(ctx)
	}()
	wg.Wait()

	a.screen = ScreenTeamDetail
	return nil
}

// Back leaves the team detail screen, stopping the slideshow for the team
// being left, and re-enters the team list.
func (a *App) Back(ctx context.Context) error {
	a.gallery.Stop()
	return a.enterTeamList(ctx)
}

// SignOut clears the session and every team-scoped cache and returns to
// the login screen. It always succeeds.
func (a *App) SignOut() {
	a.sessions.Logout()
	a.gallery.Reset()
	a.chatEngine.Reset()
	a.teams = nil
	a.currentTeam = nil
	a.screen = ScreenLoggedOut
}

// CreateTeam asks the store to create a team owned by the session user and
// appends the returned record to the cached list. The store assigns the id;
// a response without one is an error, not a team.
func (a *App) CreateTeam(ctx context.Context, name, description string) (*models.Team, error) {
	a.tracker.Begin()
	team, err := a.client.CreateTeam(ctx, name, description, a.sessions.Current().Email)
	a.tracker.End()
	if err != nil {
		return nil, err
	}
	if team.ID == "" {
		return nil, errors.New("store returned a team without an id")
	}

	a.teams = append(a.teams, *team)
	return team, nil
}

// Close stops the slideshow and releases the store connection.
func (a *App) Close() error {
	a.gallery.Stop()
	return a.client.Close()
}

func (a *App) confirmPrompt(prompt string) bool {
	ok, err := Confirm(a.reader, prompt, a.out)
	if err != nil {
		return false
	}
	return ok
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
