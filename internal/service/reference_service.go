package service

import (
	"context"
	"net/http"

	"uni-seeder/internal/client"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/model"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ReferenceService wraps the country, city and university endpoints. Create
// calls carry token when one is set; the backend guards them behind an admin
// account.
type ReferenceService struct {
	client *client.Client
	logger *logrus.Logger
	tracer trace.Tracer
	token  string
}

func NewReferenceService(client *client.Client, logger *logrus.Logger) *ReferenceService {
	return &ReferenceService{client: client, logger: logger, tracer: otel.Tracer("ReferenceService")}
}

// Authorize attaches token to every subsequent create call.
func (s *ReferenceService) Authorize(token string) {
	s.token = token
	s.logger.Debug("Reference creates will carry an admin token")
}

func (s *ReferenceService) CreateCountry(ctx context.Context, req *dto.CreateCountryRequest) client.Result {
	return s.create(ctx, "ReferenceService.CreateCountry", "/country", req)
}

func (s *ReferenceService) CreateCity(ctx context.Context, req *dto.CreateCityRequest) client.Result {
	return s.create(ctx, "ReferenceService.CreateCity", "/city", req)
}

func (s *ReferenceService) CreateUniversity(ctx context.Context, req *dto.CreateUniversityRequest) client.Result {
	return s.create(ctx, "ReferenceService.CreateUniversity", "/university", req)
}

func (s *ReferenceService) ListCountries(ctx context.Context) ([]model.Entity, client.Result) {
	return s.list(ctx, "ReferenceService.ListCountries", "/country")
}

func (s *ReferenceService) ListCities(ctx context.Context) ([]model.Entity, client.Result) {
	return s.list(ctx, "ReferenceService.ListCities", "/city")
}

func (s *ReferenceService) ListUniversities(ctx context.Context) ([]model.Entity, client.Result) {
	return s.list(ctx, "ReferenceService.ListUniversities", "/university")
}

func (s *ReferenceService) create(ctx context.Context, spanName, path string, body any) client.Result {
	spanCtx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	result := s.client.Do(spanCtx, client.Call{
		Method: http.MethodPost,
		Path:   path,
		Token:  s.token,
		Body:   body,
		Expect: http.StatusCreated,
	}, nil)
	if !result.OK() {
		s.logger.WithContext(spanCtx).WithFields(logrus.Fields{
			"path":          path,
			"status":        result.Status,
			"authenticated": s.token != "",
		}).Debug("Reference create rejected")
	}
	return result
}

func (s *ReferenceService) list(ctx context.Context, spanName, path string) ([]model.Entity, client.Result) {
	spanCtx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	var entities []model.Entity
	result := s.client.Do(spanCtx, client.Call{
		Method: http.MethodGet,
		Path:   path,
		Expect: http.StatusOK,
	}, &entities)
	if !result.OK() {
		return nil, result
	}
	s.logger.WithContext(spanCtx).WithFields(logrus.Fields{
		"path":  path,
		"count": len(entities),
	}).Debug("Reference entities listed")
	return entities, result
}
