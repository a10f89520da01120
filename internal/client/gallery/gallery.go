// Package gallery owns the ordered photo set for the focused team: the
// slideshow position and auto-advance, the single-photo modal with its zoom
// flag, uploads and confirmed deletes.
package gallery

import (
	"context"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"teamspace/internal/client/busy"
	"teamspace/internal/client/models"
	"teamspace/internal/client/store"
	"teamspace/internal/logging"
)

// Confirm is the yes/no gate asked before destructive actions.
type Confirm func(prompt string) bool

type Controller struct {
	client   store.Client
	logger   logging.Logger
	busy     *busy.Tracker
	interval time.Duration
	confirm  Confirm

	mu      sync.Mutex
	teamID  string
	photos  []models.Photo
	index   int
	focused *models.Photo
	zoomed  bool
	stop    chan struct{}
}

func New(client store.Client, logger logging.Logger, tracker *busy.Tracker, interval time.Duration, confirm Confirm) *Controller {
	return &Controller{
		client:   client,
		logger:   logger,
		busy:     tracker,
		interval: interval,
		confirm:  confirm,
	}
}

// Load replaces the cached sequence wholesale and resets the slide index.
// Any failure degrades to an empty gallery; Load never reports a hard error.
func (g *Controller) Load(ctx context.Context, teamID string) {
	g.busy.Begin()
	photos, err := g.client.ListPhotos(ctx, teamID)
	g.busy.End()
	if err != nil {
		g.logger.Warn(ctx, "photo load failed, showing empty gallery", "team_id", teamID, "error", err)
		photos = nil
	}

	g.mu.Lock()
	g.teamID = teamID
	g.photos = photos
	g.index = 0
	g.restartSlideshowLocked()
	g.mu.Unlock()
}

// Photos returns a copy of the cached sequence.
func (g *Controller) Photos() []models.Photo {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.Photo(nil), g.photos...)
}

// Index returns the current slide position.
func (g *Controller) Index() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.index
}

// Current returns the photo at the slide position, false when empty.
func (g *Controller) Current() (models.Photo, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.photos) == 0 {
		return models.Photo{}, false
	}
	return g.photos[g.index], true
}

// Advance moves the slide position by direction (+1 or -1), wrapping modulo
// the sequence length. A no-op on an empty gallery.
func (g *Controller) Advance(direction int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advanceLocked(direction)
}

func (g *Controller) advanceLocked(direction int) {
	n := len(g.photos)
	if n == 0 {
		return
	}
	g.index = ((g.index+direction)%n + n) % n
}

// SlideshowActive reports whether the auto-advance ticker is running.
func (g *Controller) SlideshowActive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stop != nil
}

// restartSlideshowLocked tears down any running ticker and starts a new one
// when more than one photo is cached. Callers must hold g.mu.
func (g *Controller) restartSlideshowLocked() {
	if g.stop != nil {
		close(g.stop)
		g.stop = nil
	}
	if len(g.photos) <= 1 {
		return
	}

	stop := make(chan struct{})
	g.stop = stop
	go func() {
		ticker := time.NewTicker(g.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.Advance(1)
			case <-stop:
				return
			}
		}
	}()
}

// Stop tears down the slideshow ticker. Called when the owning screen is
// exited; leaking the ticker across navigation would keep mutating a
// gallery nobody is looking at.
func (g *Controller) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stop != nil {
		close(g.stop)
		g.stop = nil
	}
}

// Reset clears all cached state, used on logout.
func (g *Controller) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stop != nil {
		close(g.stop)
		g.stop = nil
	}
	g.teamID = ""
	g.photos = nil
	g.index = 0
	g.focused = nil
	g.zoomed = false
}

// EncodeImage wraps raw image bytes in a self-describing data URI.
func EncodeImage(data []byte) string {
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Upload submits each file independently as a new photo of the focused
// team. Per-file failures are logged and skipped; there is no rollback.
// After the whole batch the gallery reloads so the cache reflects the
// store's authoritative state.
func (g *Controller) Upload(ctx context.Context, files [][]byte) {
	g.mu.Lock()
	teamID := g.teamID
	g.mu.Unlock()

	g.busy.Begin()
	for _, file := range files {
		payload := EncodeImage(file)
		if _, err := g.client.UploadPhoto(ctx, teamID, payload, time.Now()); err != nil {
			g.logger.Warn(ctx, "photo upload failed, skipping file", "team_id", teamID, "error", err)
		}
	}
	g.busy.End()

	g.Load(ctx, teamID)
}

// Focus opens the modal view on a photo.
func (g *Controller) Focus(photo models.Photo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := photo
	g.focused = &p
	g.zoomed = false
}

// Unfocus closes the modal view.
func (g *Controller) Unfocus() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.focused = nil
	g.zoomed = false
}

// Focused returns the modal photo, false when the modal is closed.
func (g *Controller) Focused() (models.Photo, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.focused == nil {
		return models.Photo{}, false
	}
	return *g.focused, true
}

// ToggleZoom flips the zoom flag. Only meaningful while a photo is focused.
func (g *Controller) ToggleZoom() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.focused == nil {
		return
	}
	g.zoomed = !g.zoomed
}

// Zoomed reports the modal zoom flag.
func (g *Controller) Zoomed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.zoomed
}

// Delete removes the focused photo after the confirmation gate. Declining
// is a no-op. On success the modal closes and the gallery reloads; on
// failure the error is returned and the stale cache stays untouched.
func (g *Controller) Delete(ctx context.Context) error {
	g.mu.Lock()
	if g.focused == nil {
		g.mu.Unlock()
		return nil
	}
	photo := *g.focused
	teamID := g.teamID
	g.mu.Unlock()

	if !g.confirm("Delete this photo?") {
		return nil
	}

	g.busy.Begin()
	err := g.client.DeletePhoto(ctx, photo.ID)
	g.busy.End()
	if err != nil {
		return err
	}

	g.Unfocus()
	g.Load(ctx, teamID)
	return nil
}
