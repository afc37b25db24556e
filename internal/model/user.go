package model

type User struct {
	ID            ID     `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Role          Role   `json:"role"`
	UniversityID  ID     `json:"universityId,omitempty"`
	Degree        string `json:"degree,omitempty"`
	OpenToContact bool   `json:"openToContact"`
}

// Session ties a created (or logged-in) user to the bearer token that
// authorizes their forum actions for the rest of a run.
type Session struct {
	UserID ID
	Name   string
	Email  string
	Token  string
}

// Account is a user as the rehearsal API stores it, with the password hash
// that never leaves the store.
type Account struct {
	User
	PasswordHash string `json:"-"`
}
