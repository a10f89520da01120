// Package chat owns the message list for the focused team and the budget
// flow: every sent message is scanned for monetary amounts and a positive
// sum is added to the team's running total at the store.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"teamspace/internal/client/budget"
	"teamspace/internal/client/busy"
	"teamspace/internal/client/models"
	"teamspace/internal/client/store"
	"teamspace/internal/logging"
)

// ErrEmptyMessage rejects a send whose text is empty after trimming. The
// check happens before any network call.
var ErrEmptyMessage = errors.New("message is empty")

// Status tags an optimistic entry with the outcome of its write.
type Status int

const (
	StatusPending Status = iota
	StatusConfirmed
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Entry is a message plus its local delivery status. Loaded messages are
// always confirmed; sent messages start pending and are reconciled when the
// write resolves.
type Entry struct {
	models.Message
	Status Status
}

type Engine struct {
	client store.Client
	logger logging.Logger
	busy   *busy.Tracker
	cache  *budget.Cache
	now    func() time.Time

	mu      sync.Mutex
	teamID  string
	sender  string
	entries []Entry
	total   float64
}

func New(client store.Client, logger logging.Logger, tracker *busy.Tracker, cache *budget.Cache) *Engine {
	return &Engine{
		client: client,
		logger: logger,
		busy:   tracker,
		cache:  cache,
		now:    time.Now,
	}
}

// Open scopes the engine to a team and sender, clearing prior caches.
func (e *Engine) Open(teamID, senderEmail string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teamID = teamID
	e.sender = senderEmail
	e.entries = nil
	e.total = 0
}

// LoadMessages replaces the cached message list wholesale. Failures degrade
// to an empty list with a logged diagnostic.
func (e *Engine) LoadMessages(ctx context.Context) {
	e.mu.Lock()
	teamID := e.teamID
	e.mu.Unlock()

	e.busy.Begin()
	msgs, err := e.client.ListMessages(ctx, teamID)
	e.busy.End()
	if err != nil {
		e.logger.Warn(ctx, "message load failed, showing empty chat", "team_id", teamID, "error", err)
		msgs = nil
	}

	entries := make([]Entry, len(msgs))
	for i, m := range msgs {
		entries[i] = Entry{Message: m, Status: StatusConfirmed}
	}

	e.mu.Lock()
	e.entries = entries
	e.mu.Unlock()
}

// LoadBudget fetches the team's total from the store, mirroring it into
// the local cache. When the store is unreachable the last cached total is
// shown instead.
func (e *Engine) LoadBudget(ctx context.Context) {
	e.mu.Lock()
	teamID := e.teamID
	e.mu.Unlock()

	e.busy.Begin()
	total, err := e.client.Budget(ctx, teamID)
	e.busy.End()
	if err != nil {
		total = e.cache.Total(teamID)
		e.logger.Warn(ctx, "budget load failed, using cached total", "team_id", teamID, "total", total, "error", err)
	} else if err := e.cache.Set(teamID, total); err != nil {
		e.logger.Warn(ctx, "could not cache budget total", "team_id", teamID, "error", err)
	}

	e.mu.Lock()
	e.total = total
	e.mu.Unlock()
}

// Send persists a message and runs the monetary extraction pass over it.
//
// The entry appears in the local list immediately, tagged pending, and is
// reconciled to confirmed (adopting the server-assigned id) or failed when
// the write resolves. Extraction only runs for a confirmed send, and the
// budget is only touched when the extracted sum is positive.
func (e *Engine) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	e.mu.Lock()
	msg := models.Message{
		TeamID:      e.teamID,
		SenderEmail: e.sender,
		Text:        text,
		SentAt:      e.now(),
	}
	e.entries = append(e.entries, Entry{Message: msg, Status: StatusPending})
	idx := len(e.entries) - 1
	e.mu.Unlock()

	e.busy.Begin()
	saved, err := e.client.SaveMessage(ctx, &msg)
	e.busy.End()

	e.mu.Lock()
	if idx < len(e.entries) {
		if err != nil {
			e.entries[idx].Status = StatusFailed
		} else {
			e.entries[idx].Message = *saved
			e.entries[idx].Status = StatusConfirmed
		}
	}
	e.mu.Unlock()

	if err != nil {
		return err
	}

	if sum := budget.Extract(text); sum > 0 {
		e.addToBudget(ctx, sum)
	}
	return nil
}

// addToBudget applies the extracted sum atomically at the store and mirrors
// the returned total. A failed update keeps the displayed total unchanged;
// the message itself is already saved at this point.
func (e *Engine) addToBudget(ctx context.Context, delta float64) {
	e.mu.Lock()
	teamID := e.teamID
	e.mu.Unlock()

	e.busy.Begin()
	total, err := e.client.AddToBudget(ctx, teamID, delta)
	e.busy.End()
	if err != nil {
		e.logger.Warn(ctx, "budget update failed", "team_id", teamID, "delta", delta, "error", err)
		return
	}

	if err := e.cache.Set(teamID, total); err != nil {
		e.logger.Warn(ctx, "could not cache budget total", "team_id", teamID, "error", err)
	}

	e.mu.Lock()
	e.total = total
	e.mu.Unlock()
}

// Messages returns a copy of the cached entries.
func (e *Engine) Messages() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Entry(nil), e.entries...)
}

// Total returns the budget total on display.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.total
}

// Reset clears all cached state, used on logout.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teamID = ""
	e.sender = ""
	e.entries = nil
	e.total = 0
}
