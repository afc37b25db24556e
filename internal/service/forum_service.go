package service

import (
	"context"
	"fmt"
	"net/http"

	"uni-seeder/internal/client"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/model"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ForumService wraps the university forum endpoints. Topic and post creation
// act on behalf of the user owning token.
type ForumService struct {
	client *client.Client
	logger *logrus.Logger
	tracer trace.Tracer
}

func NewForumService(client *client.Client, logger *logrus.Logger) *ForumService {
	return &ForumService{client, logger, otel.Tracer("ForumService")}
}

func (s *ForumService) CreateTopic(ctx context.Context, universityID model.ID, token string, req *dto.CreateTopicRequest) (*model.Topic, client.Result) {
	spanCtx, span := s.tracer.Start(ctx, "ForumService.CreateTopic")
	defer span.End()

	topic := new(model.Topic)
	result := s.client.Do(spanCtx, client.Call{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/forum/university/%s/topics", universityID),
		Token:  token,
		Body:   req,
		Expect: http.StatusCreated,
	}, topic)
	if !result.OK() {
		s.logger.WithContext(spanCtx).WithFields(logrus.Fields{
			"university_id": universityID.String(),
			"title":         req.Title,
			"status":        result.Status,
		}).Debug("Topic rejected")
		return nil, result
	}
	return topic, result
}

// CreatePost replies to a topic. The response body is not consumed.
func (s *ForumService) CreatePost(ctx context.Context, topicID model.ID, token string, req *dto.CreatePostRequest) client.Result {
	spanCtx, span := s.tracer.Start(ctx, "ForumService.CreatePost")
	defer span.End()

	result := s.client.Do(spanCtx, client.Call{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/forum/topic/%s/posts", topicID),
		Token:  token,
		Body:   req,
		Expect: http.StatusCreated,
	}, nil)
	if !result.OK() {
		s.logger.WithContext(spanCtx).WithFields(logrus.Fields{
			"topic_id": topicID.String(),
			"status":   result.Status,
		}).Debug("Post rejected")
	}
	return result
}

func (s *ForumService) ListTopics(ctx context.Context, universityID model.ID) ([]model.Topic, client.Result) {
	spanCtx, span := s.tracer.Start(ctx, "ForumService.ListTopics")
	defer span.End()

	var topics []model.Topic
	result := s.client.Do(spanCtx, client.Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/forum/university/%s/topics", universityID),
		Expect: http.StatusOK,
	}, &topics)
	if !result.OK() {
		return nil, result
	}
	s.logger.WithContext(spanCtx).WithFields(logrus.Fields{
		"university_id": universityID.String(),
		"count":         len(topics),
	}).Debug("Topics listed")
	return topics, result
}
