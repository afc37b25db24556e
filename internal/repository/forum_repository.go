package repository

import (
	"context"

	"uni-seeder/internal/model"
)

type TopicRepository struct {
	*Repository[model.Topic]
}

func NewTopicRepository() *TopicRepository {
	return &TopicRepository{newRepository(func(t *model.Topic) *model.ID { return &t.ID })}
}

// FindByUniversity lists a university's topics in creation order.
func (r *TopicRepository) FindByUniversity(ctx context.Context, universityID model.ID) []model.Topic {
	return r.FindAll(ctx, func(t *model.Topic) bool { return t.UniversityID == universityID })
}

type PostRepository struct {
	*Repository[model.Post]
}

func NewPostRepository() *PostRepository {
	return &PostRepository{newRepository(func(p *model.Post) *model.ID { return &p.ID })}
}

func (r *PostRepository) FindByTopic(ctx context.Context, topicID model.ID) []model.Post {
	return r.FindAll(ctx, func(p *model.Post) bool { return p.TopicID == topicID })
}
