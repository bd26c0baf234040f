package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sportshub/backend/internal/auth"
	"github.com/sportshub/backend/internal/config"
	"github.com/sportshub/backend/internal/store"
)

// New builds the fiber application with every route wired up
func New(cfg *config.Config, repo store.RepositoryManager, authn *auth.Authenticator, logger auth.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "sports-hub",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello World"})
	})

	users := &UsersController{
		Register: &auth.RegisterUserHandler{
			Repo:   repo,
			Hasher: authn.Hasher(),
		},
		Logger:           logger,
		DeterministicIDs: cfg.Auth.DeterministicIDs,
	}
	app.Post("/users/registrations", users.Create)

	protected := RequireAuth(authn, logger)

	authc := &AuthController{
		Auth:   authn,
		Logger: logger,
		Debug:  cfg.Debug,
	}

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/sign_in", authc.SignIn)
	authGroup.Post("/token", authc.Token)
	authGroup.Delete("/sign_out", protected, authc.SignOut)

	articles := &ArticlesController{
		Repo:   repo,
		Logger: logger,
	}

	articlesGroup := api.Group("/articles")
	articlesGroup.Get("/", articles.List)
	articlesGroup.Get("/:id", articles.Show)
	articlesGroup.Post("/", protected, articles.Create)
	articlesGroup.Put("/:id", protected, articles.Update)
	articlesGroup.Delete("/:id", protected, articles.Delete)
	articlesGroup.Post("/:id/comments", protected, articles.CreateComment)
	articlesGroup.Put("/:id/likes", protected, articles.Rate)

	return app
}
