package gallery

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"teamspace/internal/client/busy"
	"teamspace/internal/client/models"
	"teamspace/internal/client/store/storetest"
	"teamspace/internal/logging"
)

func photos(n int) []models.Photo {
	out := make([]models.Photo, n)
	for i := range out {
		out[i] = models.Photo{ID: string(rune('a' + i)), TeamID: "t1"}
	}
	return out
}

func newController(fake *storetest.Fake, confirm Confirm) *Controller {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return New(fake, logging.NewText(io.Discard), busy.New(nil), time.Hour, confirm)
}

func TestAdvanceWrapsBothDirections(t *testing.T) {
	fake := &storetest.Fake{
		ListPhotosFn: func(context.Context, string) ([]models.Photo, error) { return photos(3), nil },
	}
	g := newController(fake, nil)
	g.Load(context.Background(), "t1")
	defer g.Stop()

	require.Equal(t, 0, g.Index())
	g.Advance(1)
	require.Equal(t, 1, g.Index())
	g.Advance(-1)
	require.Equal(t, 0, g.Index())
	g.Advance(-1)
	require.Equal(t, 2, g.Index())
	g.Advance(1)
	require.Equal(t, 0, g.Index())
}

func TestAdvanceFullCycleReturnsToStart(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		fake := &storetest.Fake{
			ListPhotosFn: func(context.Context, string) ([]models.Photo, error) { return photos(n), nil },
		}
		g := newController(fake, nil)
		g.Load(context.Background(), "t1")

		for start := 0; start < n; start++ {
			before := g.Index()
			for i := 0; i < n; i++ {
				g.Advance(1)
			}
			require.Equal(t, before, g.Index(), "length %d start %d", n, start)
			g.Advance(1)
		}
		g.Stop()
	}
}

func TestAdvanceEmptyGalleryNoop(t *testing.T) {
	g := newController(&storetest.Fake{}, nil)
	g.Load(context.Background(), "t1")
	g.Advance(1)
	require.Equal(t, 0, g.Index())
	_, ok := g.Current()
	require.False(t, ok)
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	fake := &storetest.Fake{
		ListPhotosFn: func(context.Context, string) ([]models.Photo, error) {
			return nil, errors.New("boom")
		},
	}
	g := newController(fake, nil)
	require.NotPanics(t, func() { g.Load(context.Background(), "t1") })
	require.Empty(t, g.Photos())
	require.False(t, g.SlideshowActive())
}

func TestSlideshowLifecycle(t *testing.T) {
	var mu sync.Mutex
	current := photos(3)
	fake := &storetest.Fake{
		ListPhotosFn: func(context.Context, string) ([]models.Photo, error) {
			mu.Lock()
			defer mu.Unlock()
			return append([]models.Photo(nil), current...), nil
		},
	}
	g := newController(fake, nil)

	g.Load(context.Background(), "t1")
	require.True(t, g.SlideshowActive())

	// shrinking to a single photo tears the ticker down
	mu.Lock()
	current = photos(1)
	mu.Unlock()
	g.Load(context.Background(), "t1")
	require.False(t, g.SlideshowActive())

	mu.Lock()
	current = photos(2)
	mu.Unlock()
	g.Load(context.Background(), "t1")
	require.True(t, g.SlideshowActive())

	// navigating away stops it for good
	g.Stop()
	require.False(t, g.SlideshowActive())
}

func TestUploadBatchReloadsAuthoritativeState(t *testing.T) {
	var mu sync.Mutex
	var stored []models.Photo
	fake := &storetest.Fake{
		ListPhotosFn: func(context.Context, string) ([]models.Photo, error) {
			mu.Lock()
			defer mu.Unlock()
			return append([]models.Photo(nil), stored...), nil
		},
		UploadPhotoFn: func(_ context.Context, teamID, imageData string, uploadedAt time.Time) (*models.Photo, error) {
			mu.Lock()
			defer mu.Unlock()
			p := models.Photo{ID: string(rune('a' + len(stored))), TeamID: teamID, ImageData: imageData, UploadedAt: uploadedAt}
			stored = append(stored, p)
			return &p, nil
		},
	}
	g := newController(fake, nil)
	g.Load(context.Background(), "t1")
	require.Empty(t, g.Photos())

	g.Upload(context.Background(), [][]byte{[]byte("first image bytes"), []byte("second image bytes")})
	defer g.Stop()

	require.Len(t, g.Photos(), 2)
	require.Equal(t, 0, g.Index())
	require.True(t, g.SlideshowActive())
	require.True(t, strings.HasPrefix(g.Photos()[0].ImageData, "data:"))
	require.Contains(t, g.Photos()[0].ImageData, ";base64,")
}

func TestUploadPerFileFailureSkipped(t *testing.T) {
	var uploads int
	fake := &storetest.Fake{
		UploadPhotoFn: func(_ context.Context, teamID, imageData string, uploadedAt time.Time) (*models.Photo, error) {
			uploads++
			if uploads == 1 {
				return nil, errors.New("boom")
			}
			return &models.Photo{ID: "p", TeamID: teamID}, nil
		},
	}
	g := newController(fake, nil)
	g.Load(context.Background(), "t1")

	require.NotPanics(t, func() {
		g.Upload(context.Background(), [][]byte{[]byte("bad"), []byte("good")})
	})
	// both files were attempted despite the first failing
	require.Equal(t, 2, uploads)
}

func TestDeleteDeclinedIsNoop(t *testing.T) {
	fake := &storetest.Fake{
		ListPhotosFn: func(context.Context, string) ([]models.Photo, error) { return photos(1), nil },
	}
	g := newController(fake, func(string) bool { return false })
	g.Load(context.Background(), "t1")
	g.Focus(g.Photos()[0])

	require.NoError(t, g.Delete(context.Background()))

	_, focused := g.Focused()
	require.True(t, focused)
	require.NotContains(t, fake.Calls(), "DeletePhoto")
}

func TestDeleteOnlyPhoto(t *testing.T) {
	var mu sync.Mutex
	stored := photos(1)
	fake := &storetest.Fake{
		ListPhotosFn: func(context.Context, string) ([]models.Photo, error) {
			mu.Lock()
			defer mu.Unlock()
			return append([]models.Photo(nil), stored...), nil
		},
		DeletePhotoFn: func(context.Context, string) error {
			mu.Lock()
			defer mu.Unlock()
			stored = nil
			return nil
		},
	}
	g := newController(fake, nil)
	g.Load(context.Background(), "t1")
	g.Focus(g.Photos()[0])

	require.NoError(t, g.Delete(context.Background()))

	require.Empty(t, g.Photos())
	require.False(t, g.SlideshowActive())
	_, focused := g.Focused()
	require.False(t, focused)
}

func TestDeleteTransportFailureKeepsCache(t *testing.T) {
	fake := &storetest.Fake{
		ListPhotosFn:  func(context.Context, string) ([]models.Photo, error) { return photos(2), nil },
		DeletePhotoFn: func(context.Context, string) error { return errors.New("down") },
	}
	g := newController(fake, nil)
	g.Load(context.Background(), "t1")
	defer g.Stop()
	g.Focus(g.Photos()[0])

	require.Error(t, g.Delete(context.Background()))

	require.Len(t, g.Photos(), 2)
	_, focused := g.Focused()
	require.True(t, focused)
}

func TestZoomOnlyWhileFocused(t *testing.T) {
	g := newController(&storetest.Fake{}, nil)

	g.ToggleZoom()
	require.False(t, g.Zoomed())

	g.Focus(models.Photo{ID: "p"})
	g.ToggleZoom()
	require.True(t, g.Zoomed())
	g.ToggleZoom()
	require.False(t, g.Zoomed())

	g.ToggleZoom()
	g.Unfocus()
	require.False(t, g.Zoomed())
}
