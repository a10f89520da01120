package chat

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"teamspace/internal/client/budget"
	"teamspace/internal/client/busy"
	"teamspace/internal/client/models"
	"teamspace/internal/client/store/storetest"
	"teamspace/internal/logging"
)

func newEngine(t *testing.T, fake *storetest.Fake) *Engine {
	t.Helper()
	cache := budget.NewCache(filepath.Join(t.TempDir(), "budgets.json"))
	e := New(fake, logging.NewText(io.Discard), busy.New(nil), cache)
	e.Open("t1", "ana@example.com")
	return e
}

func TestSendEmptyRejectedBeforeNetwork(t *testing.T) {
	fake := &storetest.Fake{}
	e := newEngine(t, fake)

	for _, text := range []string{"", "   ", "\n\t"} {
		require.ErrorIs(t, e.Send(context.Background(), text), ErrEmptyMessage)
	}
	require.Empty(t, fake.Calls())
	require.Empty(t, e.Messages())
}

func TestSendConfirmsOptimisticEntry(t *testing.T) {
	fake := &storetest.Fake{
		SaveMessageFn: func(_ context.Context, msg *models.Message) (*models.Message, error) {
			saved := *msg
			saved.ID = "m-42"
			return &saved, nil
		},
	}
	e := newEngine(t, fake)

	require.NoError(t, e.Send(context.Background(), "hola equipo"))

	msgs := e.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, StatusConfirmed, msgs[0].Status)
	require.Equal(t, "m-42", msgs[0].ID)
	require.Equal(t, "ana@example.com", msgs[0].SenderEmail)
	require.Equal(t, "hola equipo", msgs[0].Text)
}

func TestSendFailureMarksEntryFailed(t *testing.T) {
	fake := &storetest.Fake{
		SaveMessageFn: func(context.Context, *models.Message) (*models.Message, error) {
			return nil, errors.New("down")
		},
	}
	e := newEngine(t, fake)

	require.Error(t, e.Send(context.Background(), "hello 10 dollars"))

	msgs := e.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, StatusFailed, msgs[0].Status)
	// a failed save never reaches the budget
	require.NotContains(t, fake.Calls(), "AddToBudget")
	require.Zero(t, e.Total())
}

func TestSendUpdatesBudgetWithExtractedSum(t *testing.T) {
	var gotDelta float64
	fake := &storetest.Fake{
		AddToBudgetFn: func(_ context.Context, _ string, delta float64) (float64, error) {
			gotDelta = delta
			return 120 + delta, nil
		},
	}
	e := newEngine(t, fake)

	require.NoError(t, e.Send(context.Background(), "lunch was 20 dollars"))

	require.InDelta(t, 20, gotDelta, 1e-9)
	require.InDelta(t, 140, e.Total(), 1e-9)
}

func TestSendWithoutAmountsSkipsBudget(t *testing.T) {
	fake := &storetest.Fake{}
	e := newEngine(t, fake)

	require.NoError(t, e.Send(context.Background(), "no money here"))

	require.NotContains(t, fake.Calls(), "AddToBudget")
	require.Zero(t, e.Total())
}

func TestBudgetUpdateFailureKeepsDisplayedTotal(t *testing.T) {
	fake := &storetest.Fake{
		BudgetFn: func(context.Context, string) (float64, error) { return 50, nil },
		AddToBudgetFn: func(context.Context, string, float64) (float64, error) {
			return 0, errors.New("down")
		},
	}
	e := newEngine(t, fake)
	e.LoadBudget(context.Background())
	require.InDelta(t, 50, e.Total(), 1e-9)

	// the send itself succeeds even though the budget bump is lost
	require.NoError(t, e.Send(context.Background(), "taxi 5 dollars"))
	require.InDelta(t, 50, e.Total(), 1e-9)
}

func TestLoadMessagesWholesaleReplace(t *testing.T) {
	fake := &storetest.Fake{
		ListMessagesFn: func(context.Context, string) ([]models.Message, error) {
			return []models.Message{
				{ID: "m1", TeamID: "t1", SenderEmail: "ana@example.com", Text: "hi", SentAt: time.Now()},
				{ID: "m2", TeamID: "t1", SenderEmail: "bob@example.com", Text: "hey", SentAt: time.Now()},
			}, nil
		},
	}
	e := newEngine(t, fake)
	require.NoError(t, e.Send(context.Background(), "local only"))

	e.LoadMessages(context.Background())

	msgs := e.Messages()
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		require.Equal(t, StatusConfirmed, m.Status)
	}
}

func TestLoadMessagesFailureDegradesToEmpty(t *testing.T) {
	fake := &storetest.Fake{
		ListMessagesFn: func(context.Context, string) ([]models.Message, error) {
			return nil, errors.New("down")
		},
	}
	e := newEngine(t, fake)
	require.NotPanics(t, func() { e.LoadMessages(context.Background()) })
	require.Empty(t, e.Messages())
}

func TestLoadBudgetFallsBackToCache(t *testing.T) {
	calls := 0
	fake := &storetest.Fake{
		BudgetFn: func(context.Context, string) (float64, error) {
			calls++
			if calls == 1 {
				return 75, nil
			}
			return 0, errors.New("down")
		},
	}
	e := newEngine(t, fake)

	e.LoadBudget(context.Background())
	require.InDelta(t, 75, e.Total(), 1e-9)

	// store down: the cached total stands in
	e.LoadBudget(context.Background())
	require.InDelta(t, 75, e.Total(), 1e-9)
}
