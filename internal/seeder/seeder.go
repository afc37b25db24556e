package seeder

import (
	"context"

	"github.com/sirupsen/logrus"

	"uni-seeder/internal/client"
	"uni-seeder/internal/config/env"
	"uni-seeder/internal/service"
)

// Seeder wires the API client, services and workflows for one process.
type Seeder struct {
	log       *logrus.Logger
	config    *env.Config
	runner    *Runner
	reference *ReferenceWorkflow
	roster    *RosterWorkflow
	forums    *ForumsWorkflow
}

func New(log *logrus.Logger, config *env.Config) *Seeder {
	apiClient := client.NewClient(log, config)

	authService := service.NewAuthService(apiClient, log)
	forumService := service.NewForumService(apiClient, log)
	referenceService := service.NewReferenceService(apiClient, log)

	return &Seeder{
		log:       log,
		config:    config,
		runner:    NewRunner(log),
		reference: NewReferenceWorkflow(authService, referenceService, config, log),
		roster:    NewRosterWorkflow(authService, forumService, config, log),
		forums:    NewForumsWorkflow(authService, forumService, referenceService, config, log),
	}
}

// RunReference seeds countries, cities and universities from CSV files.
func (s *Seeder) RunReference(ctx context.Context) (*Summary, error) {
	state := NewState(s.log, 0)
	return state.Summary, s.reference.Run(ctx, s.runner, state)
}

// RunRoster seeds users, topics and posts for the configured university.
func (s *Seeder) RunRoster(ctx context.Context) (*Summary, error) {
	state := NewState(s.log, s.config.Roster.Seed)
	return state.Summary, s.roster.Run(ctx, s.runner, state)
}

// RunForums seeds topics and replies for every university.
func (s *Seeder) RunForums(ctx context.Context) (*Summary, error) {
	state := NewState(s.log, s.config.Forums.Seed)
	return state.Summary, s.forums.Run(ctx, s.runner, state)
}
