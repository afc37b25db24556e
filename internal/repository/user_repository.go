package repository

import (
	"context"

	"uni-seeder/internal/model"
)

type UserRepository struct {
	*Repository[model.Account]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		Repository: newRepository(func(a *model.Account) *model.ID { return &a.ID }),
	}
}

// CountByEmail returns the number of accounts with the given email.
func (r *UserRepository) CountByEmail(ctx context.Context, email string) int64 {
	return r.CountBy(ctx, func(a *model.Account) bool { return a.Email == email })
}

// FindByEmail finds an account by email.
func (r *UserRepository) FindByEmail(ctx context.Context, account *model.Account, email string) error {
	return r.FindBy(ctx, account, func(a *model.Account) bool { return a.Email == email })
}
