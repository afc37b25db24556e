package route

import (
	"github.com/gofiber/fiber/v2"

	"uni-seeder/internal/controller"
)

// RouteConfig handles route registration
type RouteConfig struct {
	App *fiber.App
}

// NewRouteConfig initializes the router
func NewRouteConfig(app *fiber.App) *RouteConfig {
	return &RouteConfig{app}
}

func (r *RouteConfig) WelcomeRoutes(welcomeController *controller.WelcomeController) {
	r.App.Get("/", welcomeController.Hello)
}

// RegisterAuthRoutes defines account routes
func (r *RouteConfig) RegisterAuthRoutes(authController *controller.AuthController) {
	auth := r.App.Group("/auth")
	{
		auth.Post("/register", authController.Register)
		auth.Post("/login", authController.Login)
	}
}

// RegisterForumRoutes defines forum routes; writes need a session.
func (r *RouteConfig) RegisterForumRoutes(forumController *controller.ForumController, authMiddleware fiber.Handler) {
	forum := r.App.Group("/forum")
	{
		forum.Get("/university/:id/topics", forumController.ListTopics)
		forum.Post("/university/:id/topics", authMiddleware, forumController.CreateTopic)
		forum.Post("/topic/:id/posts", authMiddleware, forumController.CreatePost)
	}
}

// RegisterReferenceRoutes defines country, city and university routes.
func (r *RouteConfig) RegisterReferenceRoutes(referenceController *controller.ReferenceController, adminMiddleware fiber.Handler) {
	r.App.Get("/country", referenceController.ListCountries)
	r.App.Post("/country", adminMiddleware, referenceController.CreateCountry)

	r.App.Get("/city", referenceController.ListCities)
	r.App.Post("/city", adminMiddleware, referenceController.CreateCity)

	r.App.Get("/university", referenceController.ListUniversities)
	r.App.Post("/university", adminMiddleware, referenceController.CreateUniversity)
}
