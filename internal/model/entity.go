package model

// Entity is the {id, name} projection every list endpoint returns.
type Entity struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type Topic struct {
	ID           ID     `json:"id"`
	UniversityID ID     `json:"universityId"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Posts        []Post `json:"posts,omitempty"`
}

type Post struct {
	ID      ID     `json:"id"`
	TopicID ID     `json:"topicId"`
	UserID  ID     `json:"userId"`
	Content string `json:"content"`
}
