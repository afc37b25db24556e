package repository

import (
	"context"

	"uni-seeder/internal/model"
)

type CountryRepository struct {
	*Repository[model.Country]
}

func NewCountryRepository() *CountryRepository {
	return &CountryRepository{newRepository(func(c *model.Country) *model.ID { return &c.ID })}
}

func (r *CountryRepository) CountByName(ctx context.Context, name string) int64 {
	return r.CountBy(ctx, func(c *model.Country) bool { return c.Name == name })
}

type CityRepository struct {
	*Repository[model.City]
}

func NewCityRepository() *CityRepository {
	return &CityRepository{newRepository(func(c *model.City) *model.ID { return &c.ID })}
}

// CountByName counts cities with name inside one country, since city names
// repeat across countries.
func (r *CityRepository) CountByName(ctx context.Context, name string, countryID model.ID) int64 {
	return r.CountBy(ctx, func(c *model.City) bool { return c.Name == name && c.CountryID == countryID })
}

type UniversityRepository struct {
	*Repository[model.University]
}

func NewUniversityRepository() *UniversityRepository {
	return &UniversityRepository{newRepository(func(u *model.University) *model.ID { return &u.ID })}
}

func (r *UniversityRepository) CountByName(ctx context.Context, name string) int64 {
	return r.CountBy(ctx, func(u *model.University) bool { return u.Name == name })
}
