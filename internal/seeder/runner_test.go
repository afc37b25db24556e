package seeder

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"uni-seeder/internal/client"
	"uni-seeder/internal/model"
	"uni-seeder/internal/utils/errcode"
)

func silentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func ok(status int) client.Result {
	return client.Result{Kind: client.StatusSuccess, Status: status}
}

func failed(status int, body string) client.Result {
	return client.Result{Kind: client.StatusHTTPError, Status: status, Detail: body}
}

func TestRunner_PhasesRunInOrderAndResolveTables(t *testing.T) {
	state := NewState(silentLogger(), 1)
	var order []string

	phases := []Phase{
		{
			Entity: "country",
			Dispatch: func(ctx context.Context, s *State) int {
				order = append(order, "create country")
				s.Report.Created("country", "Testland", "", ok(201))
				return 1
			},
			Resolve: func(ctx context.Context, s *State) ([]model.Entity, error) {
				order = append(order, "list country")
				return []model.Entity{{ID: "5", Name: "Testland"}}, nil
			},
		},
		{
			Entity:   "city",
			Requires: []string{"country"},
			Dispatch: func(ctx context.Context, s *State) int {
				order = append(order, "create city with "+s.Table("country").Lookup("Testland").String())
				return 0
			},
		},
	}

	require.NoError(t, NewRunner(silentLogger()).Run(context.Background(), "test", state, phases))
	require.Equal(t, []string{"create country", "list country", "create city with 5"}, order)
	require.Equal(t, []model.Entity{{ID: "5", Name: "Testland"}}, state.Collections["country"])
	require.Equal(t, 1, state.Summary.Created("country"))
}

func TestRunner_MissingLookup(t *testing.T) {
	state := NewState(silentLogger(), 1)
	dispatched := false

	err := NewRunner(silentLogger()).Run(context.Background(), "test", state, []Phase{{
		Entity:   "city",
		Requires: []string{"country"},
		Dispatch: func(context.Context, *State) int { dispatched = true; return 1 },
	}})

	require.ErrorIs(t, err, errcode.ErrMissingLookup)
	require.False(t, dispatched)
}

func TestRunner_CriticalPhaseStopsRun(t *testing.T) {
	state := NewState(silentLogger(), 1)
	laterRan := false

	err := NewRunner(silentLogger()).Run(context.Background(), "test", state, []Phase{
		{Entity: "user", Critical: true, Dispatch: func(context.Context, *State) int { return 0 }},
		{Entity: "topic", Dispatch: func(context.Context, *State) int { laterRan = true; return 1 }},
	})

	require.ErrorIs(t, err, errcode.ErrNoneCreated)
	require.False(t, laterRan)
}

func TestRunner_NonCriticalEmptyPhaseContinues(t *testing.T) {
	state := NewState(silentLogger(), 1)
	laterRan := false

	err := NewRunner(silentLogger()).Run(context.Background(), "test", state, []Phase{
		{Entity: "country", Dispatch: func(context.Context, *State) int { return 0 }},
		{Entity: "city", Dispatch: func(context.Context, *State) int { laterRan = true; return 0 }},
	})

	require.NoError(t, err)
	require.True(t, laterRan)
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRunner(silentLogger()).Run(ctx, "test", NewState(silentLogger(), 1), []Phase{
		{Entity: "country", Dispatch: func(context.Context, *State) int { t.Fatal("dispatched after cancel"); return 0 }},
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_CancelDuringCriticalPhase(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	resolved := false

	err := NewRunner(silentLogger()).Run(ctx, "test", NewState(silentLogger(), 1), []Phase{{
		Entity:   "user",
		Critical: true,
		Dispatch: func(context.Context, *State) int { cancel(); return 0 },
		Resolve:  func(context.Context, *State) ([]model.Entity, error) { resolved = true; return nil, nil },
	}})

	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, errcode.ErrNoneCreated)
	require.False(t, resolved)
}

func TestNewRand_SeedIsReproducible(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	require.NotNil(t, NewRand(0))
}

func TestReporter(t *testing.T) {
	log, hook := test.NewNullLogger()
	summary := NewSummary()
	reporter := NewReporter(log, "run-1", summary)

	reporter.Created("country", "Testland", "", ok(201))
	reporter.Created("user", "Alice Johnson", "12", ok(201))
	reporter.Created("country", "Testland", "", failed(409, `{"error":"country already exists"}`))
	reporter.Created("city", "Testville", "", client.Result{Kind: client.StatusTransportError, Detail: "connection refused"})
	reporter.Listed("country", 1, ok(200))

	entries := hook.AllEntries()
	require.Len(t, entries, 5)

	require.Equal(t, logrus.InfoLevel, entries[0].Level)
	require.Equal(t, "created", entries[0].Message)
	require.Equal(t, "run-1", entries[0].Data["run_id"])
	require.NotContains(t, entries[0].Data, "id")

	require.Equal(t, "12", entries[1].Data["id"])

	require.Equal(t, logrus.WarnLevel, entries[2].Level)
	require.Equal(t, `409 - {"error":"country already exists"}`, entries[2].Data["error"])
	require.Equal(t, "connection refused", entries[3].Data["error"])
	require.Equal(t, "transport_error", entries[3].Data["kind"])

	require.Equal(t, 1, entries[4].Data["count"])

	require.Equal(t, []string{"country", "user", "city"}, summary.Entities())
	require.Equal(t, Tally{Attempted: 2, Created: 1, Failed: 1}, summary.Get("country"))
	require.Equal(t, Tally{Attempted: 1, Failed: 1}, summary.Get("city"))
	require.Equal(t, Tally{}, summary.Get("post"))

	hook.Reset()
	reporter.Summarize("reference")
	require.Len(t, hook.AllEntries(), 3)
	last := hook.LastEntry()
	require.Equal(t, "summary", last.Message)
	require.Equal(t, "city", last.Data["entity"])
	require.Equal(t, 1, last.Data["failed"])
}

func TestReporter_CreatedRow(t *testing.T) {
	log, hook := test.NewNullLogger()
	summary := NewSummary()
	reporter := NewReporter(log, "run-1", summary)

	reporter.CreatedRow("city", 3, "Testville", ok(201))
	reporter.CreatedRow("city", 4, "Ghost Town", failed(404, `{"error":"country not found"}`))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, 3, entries[0].Data["line"])
	require.NotContains(t, entries[0].Data, "id")
	require.Equal(t, logrus.WarnLevel, entries[1].Level)
	require.Equal(t, 4, entries[1].Data["line"])
	require.Equal(t, "Ghost Town", entries[1].Data["name"])
	require.Equal(t, Tally{Attempted: 2, Created: 1, Failed: 1}, summary.Get("city"))
}
