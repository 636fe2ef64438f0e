package route

import (
	"github.com/gofiber/fiber/v2"

	"quotation-service/src/internal/delivery/http"
)

type RouteConfig struct {
	App                     *fiber.App
	PersonController        *http.PersonController
	AdministratorController *http.AdministratorController
	CategoryController      *http.CategoryController
	DestinationController   *http.DestinationController
	OriginController        *http.OriginController
	QuoteController         *http.QuoteController
	AuthorizationController *http.AuthorizationController
	AuthMiddleware          fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	api := c.App.Group("/api")
	api.Post("/administrators/login", c.AdministratorController.Login)

	api.Use(c.AuthMiddleware)

	api.Get("/people", c.PersonController.List)
	api.Get("/people/:id", c.PersonController.Get)
	api.Post("/people", c.PersonController.Create)
	api.Put("/people/:id", c.PersonController.Update)
	api.Delete("/people/:id", c.PersonController.Delete)

	api.Post("/administrators/restore-password/:id", c.AdministratorController.RestorePassword)

	api.Get("/categories", c.CategoryController.List)
	api.Get("/categories/:id", c.CategoryController.Get)
	api.Post("/categories", c.CategoryController.Create)
	api.Put("/categories/:id", c.CategoryController.Update)
	api.Delete("/categories/:id", c.CategoryController.Delete)

	api.Get("/destinations", c.DestinationController.List)
	api.Get("/destinations/:id", c.DestinationController.Get)
	api.Post("/destinations", c.DestinationController.Create)
	api.Put("/destinations/:id", c.DestinationController.Update)
	api.Delete("/destinations/:id", c.DestinationController.Delete)

	api.Get("/origins", c.OriginController.List)
	api.Get("/origins/:id", c.OriginController.Get)

	api.Get("/quotes", c.QuoteController.List)
	api.Get("/quotes/:id", c.QuoteController.Get)
	api.Post("/quotes", c.QuoteController.Create)
	api.Put("/quotes/:id", c.QuoteController.Update)
	api.Delete("/quotes/:id", c.QuoteController.Delete)

	api.Post("/auth/authorize-quote/:id", c.AuthorizationController.Authorize)
}
