package model

// Role is the account role the remote API stores on a user.
type Role string

const (
	RoleUser    Role = "USER"
	RoleStudent Role = "STUDENT"
	RoleMentor  Role = "MENTOR"
	RoleAdmin   Role = "ADMIN"
)
