package converter

import (
	"uni-seeder/internal/dto"
	"uni-seeder/internal/model"
)

// AuthToSession turns a register or login response into the session used by
// later forum phases. The email falls back to the one sent in the request
// because some deployments strip it from the returned user.
func AuthToSession(resp *dto.AuthResponse, email string) model.Session {
	session := model.Session{
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Email:  resp.User.Email,
		Token:  resp.Token,
	}
	if session.Email == "" {
		session.Email = email
	}
	return session
}
