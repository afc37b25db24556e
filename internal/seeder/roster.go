package seeder

import (
	"context"

	"github.com/sirupsen/logrus"

	"uni-seeder/internal/config/env"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/dto/converter"
	"uni-seeder/internal/loader"
	"uni-seeder/internal/model"
	"uni-seeder/internal/service"
)

const (
	EntityUser  = "user"
	EntityLogin = "login"
	EntityTopic = "topic"
	EntityPost  = "post"
)

// RosterWorkflow registers a university's users, lets the first few open
// forum topics, then has every user reply to a random selection of topics.
type RosterWorkflow struct {
	auth   *service.AuthService
	forum  *service.ForumService
	config *env.Config
	log    *logrus.Logger
}

func NewRosterWorkflow(auth *service.AuthService, forum *service.ForumService, config *env.Config, log *logrus.Logger) *RosterWorkflow {
	return &RosterWorkflow{auth, forum, config, log}
}

func (w *RosterWorkflow) universityID() model.ID {
	return model.ID(w.config.Roster.UniversityID)
}

func (w *RosterWorkflow) Phases(roster loader.Roster) []Phase {
	return []Phase{
		{
			Entity:   EntityUser,
			Critical: true,
			Dispatch: w.users(roster.Users),
		},
		{
			Entity:   EntityTopic,
			Dispatch: w.topics(roster.Topics),
			Resolve:  w.listTopics,
		},
		{
			Entity:   EntityPost,
			Requires: []string{EntityTopic},
			Dispatch: w.posts(roster.Responses),
		},
	}
}

// users registers every fixture and keeps the session of each success.
// With login_existing set, a failed registration falls back to a login.
func (w *RosterWorkflow) users(users []loader.UserFixture) func(context.Context, *State) int {
	return func(ctx context.Context, state *State) int {
		for _, u := range users {
			if ctx.Err() != nil {
				break
			}
			req := &dto.RegisterRequest{
				Email:         u.Email,
				Name:          u.Name,
				Password:      w.config.Roster.Password,
				Role:          u.Role,
				University:    w.config.Roster.UniversityID,
				Degree:        u.Degree,
				OpenToContact: true,
			}
			resp, result := w.auth.Register(ctx, req)
			if result.OK() {
				state.Report.Created(EntityUser, u.Name, resp.User.ID, result)
				state.Sessions = append(state.Sessions, converter.AuthToSession(resp, u.Email))
				continue
			}
			state.Report.Created(EntityUser, u.Name, "", result)

			if w.config.Roster.LoginExisting {
				w.login(ctx, state, u.Email)
			}
		}
		return len(state.Sessions)
	}
}

func (w *RosterWorkflow) login(ctx context.Context, state *State, email string) {
	resp, result := w.auth.Login(ctx, &dto.LoginRequest{Email: email, Password: w.config.Roster.Password})
	if !result.OK() {
		state.Report.Created(EntityLogin, email, "", result)
		return
	}
	state.Report.Created(EntityLogin, email, resp.User.ID, result)
	state.Sessions = append(state.Sessions, converter.AuthToSession(resp, email))
}

// topics has the first topic_authors sessions open one fixture topic each.
func (w *RosterWorkflow) topics(topics []loader.TopicFixture) func(context.Context, *State) int {
	return func(ctx context.Context, state *State) int {
		authors := state.Sessions
		if len(authors) > w.config.Roster.TopicAuthors {
			authors = authors[:w.config.Roster.TopicAuthors]
		}

		created := 0
		for i, author := range authors {
			if ctx.Err() != nil {
				break
			}
			if i >= len(topics) {
				break
			}
			fixture := topics[i]
			topic, result := w.forum.CreateTopic(ctx, w.universityID(), author.Token, &dto.CreateTopicRequest{
				Title:       fixture.Title,
				Category:    fixture.Category,
				InitialPost: fixture.Content,
			})
			if !result.OK() {
				state.Report.Created(EntityTopic, fixture.Title, "", result)
				continue
			}
			state.Report.Created(EntityTopic, fixture.Title, topic.ID, result)
			created++
		}
		return created
	}
}

// listTopics reads back every topic of the university, including ones that
// existed before this run.
func (w *RosterWorkflow) listTopics(ctx context.Context, state *State) ([]model.Entity, error) {
	topics, result := w.forum.ListTopics(ctx, w.universityID())
	state.Report.Listed(EntityTopic, len(topics), result)

	entities := make([]model.Entity, 0, len(topics))
	for _, t := range topics {
		entities = append(entities, model.Entity{ID: t.ID, Name: t.Title})
	}
	return entities, nil
}

// posts has each session reply between 1 and min(max_posts_per_user, topics)
// times, each to a distinct random topic with a random canned response.
func (w *RosterWorkflow) posts(responses []string) func(context.Context, *State) int {
	return func(ctx context.Context, state *State) int {
		topics := state.Collections[EntityTopic]
		if len(topics) == 0 {
			state.Report.Warn(EntityPost, "No topics found, users created but no forum participation")
			return 0
		}
		if len(responses) == 0 {
			state.Report.Warn(EntityPost, "No responses configured, skipping forum participation")
			return 0
		}

		created := 0
		for _, session := range state.Sessions {
			if ctx.Err() != nil {
				break
			}
			count := state.Rand.Intn(min(w.config.Roster.MaxPostsPerUser, len(topics))) + 1
			for _, pick := range state.Rand.Perm(len(topics))[:count] {
				if ctx.Err() != nil {
					break
				}
				topic := topics[pick]
				content := responses[state.Rand.Intn(len(responses))]
				result := w.forum.CreatePost(ctx, topic.ID, session.Token, &dto.CreatePostRequest{Content: content})
				state.Report.Created(EntityPost, topic.Name, "", result)
				if result.OK() {
					created++
				}
			}
		}
		return created
	}
}

// Run loads the roster fixtures and executes the workflow.
func (w *RosterWorkflow) Run(ctx context.Context, runner *Runner, state *State) error {
	roster, err := loader.LoadRoster(w.config.Roster.Fixtures, loader.DefaultRoster())
	if err != nil {
		return err
	}
	w.log.WithFields(logrus.Fields{
		"university": w.config.Roster.UniversityID,
		"users":      len(roster.Users),
		"topics":     len(roster.Topics),
	}).Info("Roster fixtures loaded")

	return runner.Run(ctx, "roster", state, w.Phases(roster))
}
