package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"uni-seeder/internal/config/validation"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/model"
	"uni-seeder/internal/repository"
	"uni-seeder/internal/utils/errcode"
)

type ReferenceController struct {
	Countries    *repository.CountryRepository
	Cities       *repository.CityRepository
	Universities *repository.UniversityRepository
	Logger       *logrus.Logger
	Validation   *validation.Validation
	UniqueNames  bool
	Tracer       trace.Tracer
}

func NewReferenceController(countries *repository.CountryRepository, cities *repository.CityRepository, universities *repository.UniversityRepository, logger *logrus.Logger, validator *validation.Validation, uniqueNames bool) *ReferenceController {
	return &ReferenceController{countries, cities, universities, logger, validator, uniqueNames, otel.Tracer("ReferenceController")}
}

// parse decodes and validates a create request body into req.
func (c *ReferenceController) parse(ctx *fiber.Ctx, req any) error {
	if err := ctx.BodyParser(req); err != nil {
		c.Logger.WithError(err).Error("Failed to parse reference request")
		return errcode.ErrBadRequest
	}
	if err := c.Validation.Validate(req); err != nil {
		c.Logger.WithError(err).Warn("Validation failed for reference request")
		return err
	}
	return nil
}

func (c *ReferenceController) CreateCountry(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "CreateCountry")
	defer span.End()

	var req dto.CreateCountryRequest
	if err := c.parse(ctx, &req); err != nil {
		return err
	}
	if c.UniqueNames && c.Countries.CountByName(userContext, req.Name) > 0 {
		return errcode.ErrCountryExists
	}

	country := model.Country{Name: req.Name, Code: req.Code}
	if err := c.Countries.Create(userContext, &country); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(country)
}

func (c *ReferenceController) ListCountries(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "ListCountries")
	defer span.End()

	return ctx.JSON(c.Countries.FindAll(userContext, nil))
}

func (c *ReferenceController) CreateCity(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "CreateCity")
	defer span.End()

	var req dto.CreateCityRequest
	if err := c.parse(ctx, &req); err != nil {
		return err
	}
	if c.Countries.CountById(userContext, req.CountryID) == 0 {
		return errcode.ErrCountryNotFound
	}
	if c.UniqueNames && c.Cities.CountByName(userContext, req.Name, req.CountryID) > 0 {
		return errcode.ErrCityExists
	}

	city := model.City{Name: req.Name, CountryID: req.CountryID, Latitude: req.Latitude, Longitude: req.Longitude}
	if err := c.Cities.Create(userContext, &city); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(city)
}

func (c *ReferenceController) ListCities(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "ListCities")
	defer span.End()

	return ctx.JSON(c.Cities.FindAll(userContext, nil))
}

func (c *ReferenceController) CreateUniversity(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "CreateUniversity")
	defer span.End()

	var req dto.CreateUniversityRequest
	if err := c.parse(ctx, &req); err != nil {
		return err
	}
	if c.Countries.CountById(userContext, req.CountryID) == 0 {
		return errcode.ErrCountryNotFound
	}
	if c.Cities.CountById(userContext, req.CityID) == 0 {
		return errcode.ErrCityNotFound
	}
	if c.UniqueNames && c.Universities.CountByName(userContext, req.Name) > 0 {
		return errcode.ErrUniversityExists
	}

	university := model.University{Name: req.Name, CountryID: req.CountryID, CityID: req.CityID, IsPublic: req.IsPublic}
	if err := c.Universities.Create(userContext, &university); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(university)
}

func (c *ReferenceController) ListUniversities(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "ListUniversities")
	defer span.End()

	return ctx.JSON(c.Universities.FindAll(userContext, nil))
}
