package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DEENUU1/Jobs-portal/internal/application/auth"
	"github.com/DEENUU1/Jobs-portal/internal/application/usecase"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	OfferUC       *usecase.OfferUseCase
	ApplicationUC *usecase.ApplicationUseCase
	ReviewUC      *usecase.ReviewUseCase
	CompanyUC     *usecase.CompanyUseCase
	Catalog       repository.CatalogRepository
	JWTSecret     string
	Limiter       *RedisLimiter // nil = sin rate limiting
	RateLimit     int
	RateWindow    time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	companyOnly := RequireRole(entity.RoleCompany)
	userOnly := RequireRole(entity.RoleUser)
	limited := RateLimit(deps.Limiter, "public-write", deps.RateLimit, deps.RateWindow)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/activate/:account_id/:token", authHandler.Activate)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", authHandler.ChangePassword)
	authGroup.Get("/me", authRequired, authHandler.Me)
	authGroup.Put("/me", authRequired, authHandler.UpdateProfile)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	api.Get("/catalog", catalogHandler.Get)

	// Ofertas: listado y detalle públicos; escritura solo para empresas
	offers := api.Group("/offers")
	offerHandler := NewOfferHandler(deps.OfferUC)
	offers.Get("/", offerHandler.List)
	offers.Post("/", authRequired, companyOnly, offerHandler.Create)
	offers.Get("/:id", offerHandler.Detail)
	offers.Put("/:id", authRequired, companyOnly, offerHandler.Update)
	offers.Delete("/:id", authRequired, companyOnly, offerHandler.Delete)

	// Postulaciones
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	offers.Post("/:id/apply", limited, applicationHandler.Apply)
	offers.Get("/:id/applications", authRequired, companyOnly, applicationHandler.ListByOffer)
	offers.Get("/:id/applications/export", authRequired, companyOnly, applicationHandler.DownloadCSV)
	offers.Post("/:id/applications/export", authRequired, companyOnly, applicationHandler.ExportCSV)

	applications := api.Group("/applications")
	applications.Get("/history", authRequired, userOnly, applicationHandler.History)
	applications.Post("/:id/feedback", authRequired, companyOnly, applicationHandler.Feedback)
	applications.Delete("/:id", authRequired, companyOnly, applicationHandler.Delete)

	// Empresas: directorio y reseñas públicos, panel protegido
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	api.Get("/dashboard", authRequired, companyOnly, companyHandler.Dashboard)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.Detail)
	companies.Get("/:id/reviews", reviewHandler.List)
	companies.Post("/:id/reviews", limited, reviewHandler.Submit)
}
