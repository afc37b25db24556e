package dto

type CreateTopicRequest struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	InitialPost string `json:"initialPost" validate:"required"`
}

type CreatePostRequest struct {
	Content string `json:"content" validate:"required"`
}
