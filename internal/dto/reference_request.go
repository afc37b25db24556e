package dto

import "uni-seeder/internal/model"

type CreateCountryRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// CreateCityRequest leaves Latitude and Longitude untyped: a parsable cell is
// sent as a number, anything else is passed through verbatim.
type CreateCityRequest struct {
	Name      string   `json:"name" validate:"required"`
	CountryID model.ID `json:"countryId" validate:"required"`
	Latitude  any      `json:"latitude"`
	Longitude any      `json:"longitude"`
}

type CreateUniversityRequest struct {
	Name      string   `json:"name" validate:"required"`
	CountryID model.ID `json:"countryId" validate:"required"`
	CityID    model.ID `json:"cityId" validate:"required"`
	IsPublic  bool     `json:"isPublic"`
}
