package seeder

import (
	"context"

	"github.com/sirupsen/logrus"

	"uni-seeder/internal/client"
	"uni-seeder/internal/config/env"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/loader"
	"uni-seeder/internal/model"
	"uni-seeder/internal/service"
)

const (
	EntityAdmin      = "admin"
	EntityCountry    = "country"
	EntityCity       = "city"
	EntityUniversity = "university"
)

// ReferenceInput is the loaded content of the three reference CSV files.
type ReferenceInput struct {
	Countries    []loader.Record
	Cities       []loader.Record
	Universities []loader.Record
}

// LoadReferenceInput reads every reference file before anything is sent.
func LoadReferenceInput(config *env.Config) (*ReferenceInput, error) {
	countries, err := loader.ReadCSV(config.Reference.Countries)
	if err != nil {
		return nil, err
	}
	cities, err := loader.ReadCSV(config.Reference.Cities)
	if err != nil {
		return nil, err
	}
	universities, err := loader.ReadCSV(config.Reference.Universities)
	if err != nil {
		return nil, err
	}
	return &ReferenceInput{countries, cities, universities}, nil
}

// ReferenceWorkflow creates countries, then cities, then universities,
// resolving each prerequisite's name->id table in between.
type ReferenceWorkflow struct {
	auth   *service.AuthService
	refs   *service.ReferenceService
	config *env.Config
	log    *logrus.Logger
}

func NewReferenceWorkflow(auth *service.AuthService, refs *service.ReferenceService, config *env.Config, log *logrus.Logger) *ReferenceWorkflow {
	return &ReferenceWorkflow{auth, refs, config, log}
}

// Phases returns the ordered phase list for input. The admin login phase is
// only present when an admin credential is configured.
func (w *ReferenceWorkflow) Phases(input *ReferenceInput) []Phase {
	var phases []Phase
	if w.config.HasAdminCredential() {
		phases = append(phases, Phase{Entity: EntityAdmin, Dispatch: w.login})
	}

	return append(phases,
		Phase{
			Entity:   EntityCountry,
			Dispatch: w.countries(input.Countries),
			Resolve:  w.list(EntityCountry, w.refs.ListCountries),
		},
		Phase{
			Entity:   EntityCity,
			Requires: []string{EntityCountry},
			Dispatch: w.cities(input.Cities),
			Resolve:  w.list(EntityCity, w.refs.ListCities),
		},
		Phase{
			Entity:   EntityUniversity,
			Requires: []string{EntityCountry, EntityCity},
			Dispatch: w.universities(input.Universities),
		},
	)
}

// login attaches an admin token to every later reference create. A failed
// login leaves creates unauthenticated and the remote decides.
func (w *ReferenceWorkflow) login(ctx context.Context, state *State) int {
	admin := w.config.API.Admin
	resp, result := w.auth.Login(ctx, &dto.LoginRequest{Email: admin.Email, Password: admin.Password})
	if !result.OK() {
		state.Report.Created(EntityAdmin, admin.Email, "", result)
		return 0
	}
	state.Report.Created(EntityAdmin, admin.Email, resp.User.ID, result)
	w.refs.Authorize(resp.Token)
	return 1
}

func (w *ReferenceWorkflow) countries(records []loader.Record) func(context.Context, *State) int {
	return func(ctx context.Context, state *State) int {
		created := 0
		for _, r := range records {
			if ctx.Err() != nil {
				break
			}
			req := &dto.CreateCountryRequest{
				Name: r.Get("Country"),
				Code: r.Get("CountryCode"),
			}
			result := w.refs.CreateCountry(ctx, req)
			state.Report.CreatedRow(EntityCountry, r.Line(), req.Name, result)
			if result.OK() {
				created++
			}
		}
		return created
	}
}

func (w *ReferenceWorkflow) cities(records []loader.Record) func(context.Context, *State) int {
	return func(ctx context.Context, state *State) int {
		countries := state.Table(EntityCountry)
		created := 0
		for _, r := range records {
			if ctx.Err() != nil {
				break
			}
			req := &dto.CreateCityRequest{
				Name:      r.Get("City"),
				CountryID: countries.Lookup(r.Get("Country")),
				Latitude:  r.Number("Latitude"),
				Longitude: r.Number("Longitude"),
			}
			result := w.refs.CreateCity(ctx, req)
			state.Report.CreatedRow(EntityCity, r.Line(), req.Name, result)
			if result.OK() {
				created++
			}
		}
		return created
	}
}

func (w *ReferenceWorkflow) universities(records []loader.Record) func(context.Context, *State) int {
	return func(ctx context.Context, state *State) int {
		countries := state.Table(EntityCountry)
		cities := state.Table(EntityCity)
		created := 0
		for _, r := range records {
			if ctx.Err() != nil {
				break
			}
			req := &dto.CreateUniversityRequest{
				Name:      r.Get("name"),
				CountryID: countries.Lookup(r.Get("country")),
				CityID:    cities.Lookup(r.Get("city")),
				IsPublic:  r.Bool("public"),
			}
			result := w.refs.CreateUniversity(ctx, req)
			state.Report.CreatedRow(EntityUniversity, r.Line(), req.Name, result)
			if result.OK() {
				created++
			}
		}
		return created
	}
}

// list adapts a read-all call into a phase resolver. A failed read yields an
// empty table so dependents are still dispatched with empty references.
func (w *ReferenceWorkflow) list(entity string, fetch func(context.Context) ([]model.Entity, client.Result)) func(context.Context, *State) ([]model.Entity, error) {
	return func(ctx context.Context, state *State) ([]model.Entity, error) {
		entities, result := fetch(ctx)
		state.Report.Listed(entity, len(entities), result)
		return entities, nil
	}
}

// Run loads the reference files and executes the workflow.
func (w *ReferenceWorkflow) Run(ctx context.Context, runner *Runner, state *State) error {
	input, err := LoadReferenceInput(w.config)
	if err != nil {
		return err
	}
	w.log.WithFields(logrus.Fields{
		"countries":    len(input.Countries),
		"cities":       len(input.Cities),
		"universities": len(input.Universities),
	}).Info("Reference files loaded")

	return runner.Run(ctx, "reference", state, w.Phases(input))
}
