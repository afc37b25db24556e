package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"uni-seeder/internal/config/validation"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/middleware"
	"uni-seeder/internal/model"
	"uni-seeder/internal/repository"
	"uni-seeder/internal/utils/errcode"
)

type ForumController struct {
	Topics     *repository.TopicRepository
	Posts      *repository.PostRepository
	Logger     *logrus.Logger
	Validation *validation.Validation
	Tracer     trace.Tracer
}

func NewForumController(topics *repository.TopicRepository, posts *repository.PostRepository, logger *logrus.Logger, validator *validation.Validation) *ForumController {
	return &ForumController{topics, posts, logger, validator, otel.Tracer("ForumController")}
}

// numericParam reads a path id. The rehearsal API only hands out integers.
func numericParam(ctx *fiber.Ctx, name string) (model.ID, error) {
	id := model.ID(ctx.Params(name))
	if _, ok := id.Int64(); !ok {
		return "", errcode.ErrInvalidIdentifier
	}
	return id, nil
}

// CreateTopic opens a topic in a university forum together with its first post.
func (c *ForumController) CreateTopic(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "CreateTopic")
	defer span.End()

	universityID, err := numericParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CreateTopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		c.Logger.WithError(err).Error("Failed to parse topic request")
		return errcode.ErrBadRequest
	}
	if err := c.Validation.Validate(req); err != nil {
		c.Logger.WithError(err).Warn("Validation failed for topic request")
		return err
	}

	author := middleware.GetUser(ctx)
	topic := model.Topic{UniversityID: universityID, Title: req.Title, Category: req.Category}
	if err := c.Topics.Create(userContext, &topic); err != nil {
		return err
	}

	post := model.Post{TopicID: topic.ID, UserID: author.UserID, Content: req.InitialPost}
	if err := c.Posts.Create(userContext, &post); err != nil {
		return err
	}
	topic.Posts = []model.Post{post}

	return ctx.Status(fiber.StatusCreated).JSON(topic)
}

func (c *ForumController) ListTopics(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "ListTopics")
	defer span.End()

	universityID, err := numericParam(ctx, "id")
	if err != nil {
		return err
	}

	return ctx.JSON(c.Topics.FindByUniversity(userContext, universityID))
}

func (c *ForumController) CreatePost(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "CreatePost")
	defer span.End()

	topicID, err := numericParam(ctx, "id")
	if err != nil {
		return err
	}
	if c.Topics.CountById(userContext, topicID) == 0 {
		return errcode.ErrTopicNotFound
	}

	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		c.Logger.WithError(err).Error("Failed to parse post request")
		return errcode.ErrBadRequest
	}
	if err := c.Validation.Validate(req); err != nil {
		c.Logger.WithError(err).Warn("Validation failed for post request")
		return err
	}

	post := model.Post{TopicID: topicID, UserID: middleware.GetUser(ctx).UserID, Content: req.Content}
	if err := c.Posts.Create(userContext, &post); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(post)
}
