package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"uni-seeder/internal/model"
	"uni-seeder/internal/utils/errcode"
)

// Phase is one step of a workflow. Dispatch issues the phase's creates and
// returns how many produced something usable; Resolve, when set, reads the
// entity back and becomes the lookup table later phases name in Requires.
type Phase struct {
	Entity   string
	Requires []string
	// Critical phases end the run with ErrNoneCreated when Dispatch yields nothing.
	Critical bool
	Dispatch func(ctx context.Context, state *State) int
	Resolve  func(ctx context.Context, state *State) ([]model.Entity, error)
}

// State is everything one run accumulates. It is owned by the goroutine
// driving the run.
type State struct {
	RunID       string
	Tables      map[string]Table
	Collections map[string][]model.Entity
	Sessions    []model.Session
	Summary     *Summary
	Report      *Reporter
	Rand        *rand.Rand
}

// NewState prepares an empty run. A zero seed draws one from the clock.
func NewState(log *logrus.Logger, seed int64) *State {
	runID := uuid.NewString()
	summary := NewSummary()
	return &State{
		RunID:       runID,
		Tables:      make(map[string]Table),
		Collections: make(map[string][]model.Entity),
		Summary:     summary,
		Report:      NewReporter(log, runID, summary),
		Rand:        NewRand(seed),
	}
}

func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Table returns the lookup table a phase required.
func (s *State) Table(entity string) Table {
	return s.Tables[entity]
}

// Runner drives phases strictly in order, one call at a time.
type Runner struct {
	log    *logrus.Logger
	tracer trace.Tracer
}

func NewRunner(log *logrus.Logger) *Runner {
	return &Runner{log, otel.Tracer("Runner")}
}

// Run executes phases against state and writes the summary when it stops,
// whether or not every phase ran.
func (r *Runner) Run(ctx context.Context, workflow string, state *State, phases []Phase) error {
	spanCtx, span := r.tracer.Start(ctx, "Runner."+workflow)
	defer span.End()
	span.SetAttributes(attribute.String("run.id", state.RunID))

	log := r.log.WithFields(logrus.Fields{"run_id": state.RunID, "workflow": workflow})
	log.Info("Seeding started")
	defer state.Report.Summarize(workflow)

	for _, phase := range phases {
		if err := spanCtx.Err(); err != nil {
			return err
		}
		if err := r.runPhase(spanCtx, state, phase); err != nil {
			log.WithError(err).Error("Seeding stopped")
			return err
		}
	}

	log.Info("Seeding completed")
	return nil
}

func (r *Runner) runPhase(ctx context.Context, state *State, phase Phase) error {
	spanCtx, span := r.tracer.Start(ctx, "Phase."+phase.Entity)
	defer span.End()

	for _, required := range phase.Requires {
		if _, ok := state.Tables[required]; !ok {
			return fmt.Errorf("%w: %s needs %s", errcode.ErrMissingLookup, phase.Entity, required)
		}
	}

	if phase.Dispatch != nil {
		produced := phase.Dispatch(spanCtx, state)
		span.SetAttributes(attribute.Int("phase.produced", produced))
		if err := ctx.Err(); err != nil {
			return err
		}
		if phase.Critical && produced == 0 {
			return fmt.Errorf("%w: %s", errcode.ErrNoneCreated, phase.Entity)
		}
	}

	if phase.Resolve != nil {
		entities, err := phase.Resolve(spanCtx, state)
		if err != nil {
			return err
		}
		state.Tables[phase.Entity] = NewTable(entities)
		state.Collections[phase.Entity] = entities
	}
	return nil
}
