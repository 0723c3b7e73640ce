package app

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/gorm"

	"officeit/internal/config"
	"officeit/internal/handlers"
	"officeit/internal/middleware"
	"officeit/internal/repositories"
	"officeit/internal/services"
)

// bodyLimit leaves room for a 5 MB image plus multipart overhead.
const bodyLimit = 6 * 1024 * 1024

// Dependencies are the collaborators NewServer wires together. Events and
// Mail are optional.
type Dependencies struct {
	DB     *gorm.DB
	Events services.EventPublisher
	Mail   services.MailSender
}

// NewServer builds the Fiber app with every route registered.
func NewServer(cfg *config.Config, deps Dependencies) *fiber.App {
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	categoryRepo := repositories.NewGORMCategoryRepository(deps.DB)
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	subscriberRepo := repositories.NewGORMSubscriberRepository(deps.DB)

	productService := services.NewProductService(productRepo, categoryRepo, deps.Events)
	categoryService := services.NewCategoryService(categoryRepo, productRepo, deps.Events)
	contactService := services.NewContactService(deps.Mail, cfg.ContactInbox, deps.Events)
	newsletterService := services.NewNewsletterService(subscriberRepo, deps.Events)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.AdminEmails)
	imageService := services.NewImageService(cfg.UploadDir, cfg.PublicURL)
	exportService := services.NewExportService(productRepo)
	storefrontService := services.NewStorefrontService(productRepo, categoryService)

	app := fiber.New(fiber.Config{
		AppName:     "officeit",
		BodyLimit:   bodyLimit,
		JSONEncoder: jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder: jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	})

	app.Use(recover.New())
	if cfg.LogMode != "test" {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Static("/uploads", imageService.Dir())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": deps.Events != nil,
		})
	})

	api := app.Group("/api")
	authRequired := middleware.AuthRequired(authService)
	admin := []fiber.Handler{authRequired, middleware.AdminRequired()}

	handlers.NewAuthHandler(authService).RegisterRoutes(api, authRequired)
	handlers.NewProductHandler(productService, imageService, exportService).RegisterRoutes(api, admin...)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(api, admin...)
	handlers.NewContactHandler(contactService).RegisterRoutes(api)
	handlers.NewNewsletterHandler(newsletterService).RegisterRoutes(api)
	handlers.NewStorefrontHandler(storefrontService).RegisterRoutes(api)

	return app
}
