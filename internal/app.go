package app

import (
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"uni-seeder/internal/config/env"
	"uni-seeder/internal/config/validation"
	"uni-seeder/internal/controller"
	"uni-seeder/internal/middleware"
	"uni-seeder/internal/repository"
	"uni-seeder/internal/route"
	"uni-seeder/internal/service"
)

// BootstrapConfig assembles the rehearsal API: an in-memory stand-in for
// the remote service the seeding workflows talk to.
type BootstrapConfig struct {
	web        *fiber.App
	log        *logrus.Logger
	config     *env.Config
	validation *validation.Validation
}

func NewApp(log *logrus.Logger, config *env.Config, web *fiber.App, validation *validation.Validation) *BootstrapConfig {
	return &BootstrapConfig{web, log, config, validation}
}

func (app *BootstrapConfig) Bootstrap() {
	// setup repositories
	userRepository := repository.NewUserRepository()
	countryRepository := repository.NewCountryRepository()
	cityRepository := repository.NewCityRepository()
	universityRepository := repository.NewUniversityRepository()
	topicRepository := repository.NewTopicRepository()
	postRepository := repository.NewPostRepository()

	// setup services
	jwtService := service.NewJwtService(app.log, app.config)
	accountService := service.NewAccountService(userRepository, jwtService, app.log)

	// setup controller
	welcomeController := controller.NewWelcomeController()
	authController := controller.NewAuthController(accountService, app.log, app.validation)
	forumController := controller.NewForumController(topicRepository, postRepository, app.log, app.validation)
	referenceController := controller.NewReferenceController(countryRepository, cityRepository, universityRepository, app.log, app.validation, app.config.FakeAPI.UniqueNames)

	// setup middleware
	app.web.Use(middleware.Cors())
	authMiddleware := middleware.AuthMiddleware(jwtService, app.log)
	adminMiddleware := middleware.AdminMiddleware(app.config.FakeAPI.RequireAdmin, jwtService, app.log)

	// setup route
	routeConfig := route.NewRouteConfig(app.web)
	routeConfig.WelcomeRoutes(welcomeController)
	routeConfig.RegisterAuthRoutes(authController)
	routeConfig.RegisterForumRoutes(forumController, authMiddleware)
	routeConfig.RegisterReferenceRoutes(referenceController, adminMiddleware)
}

// Serve bootstraps and serves on ln until the app is shut down.
func (app *BootstrapConfig) Serve(ln net.Listener) error {
	app.Bootstrap()
	app.log.WithField("addr", ln.Addr().String()).Info("Rehearsal API listening")
	return app.web.Listener(ln)
}

func (app *BootstrapConfig) Run() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.FakeAPI.Port))
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return app.Serve(ln)
}

func (app *BootstrapConfig) Shutdown() error {
	return app.web.Shutdown()
}
