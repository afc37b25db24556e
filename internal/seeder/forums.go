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

// ForumsWorkflow gives every university a handful of topics, each with a few
// replies, all written by one forum admin account.
type ForumsWorkflow struct {
	auth   *service.AuthService
	forum  *service.ForumService
	refs   *service.ReferenceService
	config *env.Config
	log    *logrus.Logger
}

func NewForumsWorkflow(auth *service.AuthService, forum *service.ForumService, refs *service.ReferenceService, config *env.Config, log *logrus.Logger) *ForumsWorkflow {
	return &ForumsWorkflow{auth, forum, refs, config, log}
}

func (w *ForumsWorkflow) Phases(forum loader.Roster) []Phase {
	return []Phase{
		{
			Entity:   EntityAdmin,
			Critical: true,
			Dispatch: w.admin,
		},
		{
			Entity:  EntityUniversity,
			Resolve: w.listUniversities,
		},
		{
			Entity:   EntityTopic,
			Requires: []string{EntityUniversity},
			Dispatch: w.topics(forum),
		},
	}
}

// admin registers the forum admin, or logs in when the account already exists.
func (w *ForumsWorkflow) admin(ctx context.Context, state *State) int {
	admin := w.config.Forums.Admin
	resp, result := w.auth.Register(ctx, &dto.RegisterRequest{
		Email:         admin.Email,
		Name:          admin.Name,
		Password:      admin.Password,
		Role:          model.RoleAdmin,
		OpenToContact: true,
	})
	if result.OK() {
		state.Report.Created(EntityUser, admin.Name, resp.User.ID, result)
		state.Sessions = append(state.Sessions, converter.AuthToSession(resp, admin.Email))
		return 1
	}
	state.Report.Created(EntityUser, admin.Name, "", result)

	resp, result = w.auth.Login(ctx, &dto.LoginRequest{Email: admin.Email, Password: admin.Password})
	if !result.OK() {
		state.Report.Created(EntityLogin, admin.Email, "", result)
		return 0
	}
	state.Report.Created(EntityLogin, admin.Email, resp.User.ID, result)
	state.Sessions = append(state.Sessions, converter.AuthToSession(resp, admin.Email))
	return 1
}

func (w *ForumsWorkflow) listUniversities(ctx context.Context, state *State) ([]model.Entity, error) {
	universities, result := w.refs.ListUniversities(ctx)
	state.Report.Listed(EntityUniversity, len(universities), result)
	return universities, nil
}

// between draws uniformly from [lo, hi].
func between(state *State, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + state.Rand.Intn(hi-lo+1)
}

func (w *ForumsWorkflow) topics(forum loader.Roster) func(context.Context, *State) int {
	return func(ctx context.Context, state *State) int {
		universities := state.Collections[EntityUniversity]
		if len(universities) == 0 {
			state.Report.Warn(EntityTopic, "No universities found, create universities first")
			return 0
		}
		if len(forum.Topics) == 0 {
			state.Report.Warn(EntityTopic, "No topics configured, skipping forum seeding")
			return 0
		}

		cfg := w.config.Forums
		author := state.Sessions[0]
		created := 0
		for _, university := range universities {
			if ctx.Err() != nil {
				break
			}
			count := min(between(state, cfg.TopicsMin, cfg.TopicsMax), len(forum.Topics))
			for _, pick := range state.Rand.Perm(len(forum.Topics))[:count] {
				if ctx.Err() != nil {
					break
				}
				fixture := forum.Topics[pick]
				topic, result := w.forum.CreateTopic(ctx, university.ID, author.Token, &dto.CreateTopicRequest{
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

				w.replies(ctx, state, author, topic, forum.Responses)
			}
		}
		return created
	}
}

func (w *ForumsWorkflow) replies(ctx context.Context, state *State, author model.Session, topic *model.Topic, responses []string) {
	if len(responses) == 0 {
		return
	}
	count := between(state, w.config.Forums.ResponsesMin, w.config.Forums.ResponsesMax)
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			break
		}
		content := responses[state.Rand.Intn(len(responses))]
		result := w.forum.CreatePost(ctx, topic.ID, author.Token, &dto.CreatePostRequest{Content: content})
		state.Report.Created(EntityPost, topic.Title, "", result)
	}
}

// Run loads the forum fixtures and executes the workflow.
func (w *ForumsWorkflow) Run(ctx context.Context, runner *Runner, state *State) error {
	forum, err := loader.LoadRoster(w.config.Forums.Fixtures, loader.DefaultForum())
	if err != nil {
		return err
	}
	w.log.WithField("topics", len(forum.Topics)).Info("Forum fixtures loaded")

	return runner.Run(ctx, "forums", state, w.Phases(forum))
}
