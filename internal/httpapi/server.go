// Package httpapi assembles the REST API: repositories over the
// relational store, services, and the policy-gated handlers.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"zooarcadia/internal/config"
	"zooarcadia/internal/httpapi/handler"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/policy"
	"zooarcadia/internal/httpapi/repository"
	"zooarcadia/internal/httpapi/service"
	"zooarcadia/internal/stats"
)

// Deps carries the injected collaborators. Store handles are passed in
// explicitly so tests can swap in in-memory fakes; there are no
// package-level singletons.
type Deps struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Stats  stats.Store
	Logger *slog.Logger
}

// NewRouter wires repositories, services and handlers and returns the
// ready gin engine.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(d.Cfg.CORSOrigins))

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	habitatRepo := repository.NewHabitatRepository(d.DB)
	animalRepo := repository.NewAnimalRepository(d.DB)
	serviceRepo := repository.NewServiceRepository(d.DB)
	avisRepo := repository.NewAvisRepository(d.DB)
	rapportRepo := repository.NewRapportRepository(d.DB)
	consommationRepo := repository.NewConsommationRepository(d.DB)
	commentaireRepo := repository.NewCommentaireRepository(d.DB)

	// Services
	authService := service.NewAuthService(userRepo, d.Cfg)
	userService := service.NewUserService(userRepo)
	habitatService := service.NewHabitatService(habitatRepo, commentaireRepo)
	animalService := service.NewAnimalService(animalRepo, habitatRepo, d.Stats, d.Logger)
	catalogService := service.NewCatalogService(serviceRepo)
	avisService := service.NewAvisService(avisRepo)
	rapportService := service.NewRapportService(rapportRepo, animalRepo)
	consommationService := service.NewConsommationService(consommationRepo, animalRepo)
	dashboardService := service.NewDashboardService(d.Stats)

	guard := middleware.NewGuard(authService, policy.Default())
	loginLimit := middleware.RateLimit(d.Cfg.LoginRatePerMinute, d.Cfg.LoginRateBurst)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "API Zoo Arcadia fonctionne !",
			"projet":  "Zoo Arcadia",
		})
	})

	api := r.Group("/api")
	handler.NewAuthHandler(authService, loginLimit).RegisterRoutes(api, guard)
	handler.NewUserHandler(userService).RegisterRoutes(api, guard)
	handler.NewHabitatHandler(habitatService).RegisterRoutes(api, guard)
	handler.NewAnimalHandler(animalService).RegisterRoutes(api, guard)
	handler.NewServiceHandler(catalogService).RegisterRoutes(api, guard)
	handler.NewAvisHandler(avisService).RegisterRoutes(api, guard)
	handler.NewRapportHandler(rapportService).RegisterRoutes(api, guard)
	handler.NewConsommationHandler(consommationService).RegisterRoutes(api, guard)
	handler.NewDashboardHandler(dashboardService).RegisterRoutes(api, guard)
	handler.NewContactHandler(d.Logger).RegisterRoutes(api, guard)

	return r
}
