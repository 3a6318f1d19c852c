package routes

import (
	"fmt"

	"pawbase-backend/internal/api/handlers"
	"pawbase-backend/internal/api/middleware"
	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/config"
	"pawbase-backend/internal/database/models"
	"pawbase-backend/internal/repository"
	"pawbase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	shelterRepo := repository.NewShelterRepository(db)
	staffRepo := repository.NewStaffMembershipRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	medicalRecordRepo := repository.NewMedicalRecordRepository(db)
	vaccinationRepo := repository.NewVaccinationRepository(db)
	adoptionRequestRepo := repository.NewAdoptionRequestRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Authorization pipeline
	hasher := auth.NewHasher(cfg.BcryptCost)
	authService, err := auth.NewAuthService(auth.FromAppConfig(cfg), hasher, userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	tenants := auth.NewTenantResolver(orgRepo, shelterRepo, staffRepo)
	scopes := auth.NewScopeResolver(shelterRepo, staffRepo, animalRepo)
	authz := auth.NewAuthorizer(authService, tenants, scopes)

	// Services
	userService := service.NewUserService(userRepo, hasher, validate)
	orgService := service.NewOrganizationService(orgRepo, userRepo, validate)
	shelterService := service.NewShelterService(shelterRepo, scopes, validate)
	staffService := service.NewStaffService(staffRepo, userRepo, scopes, validate)
	animalService := service.NewAnimalService(animalRepo, scopes, validate)
	medicalRecordService := service.NewMedicalRecordService(medicalRecordRepo, scopes, validate)
	vaccinationService := service.NewVaccinationService(vaccinationRepo, scopes, validate)
	adoptionRequestService := service.NewAdoptionRequestService(adoptionRequestRepo, animalRepo, scopes, validate)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	shelterHandler := handlers.NewShelterHandler(shelterService, authz)
	staffHandler := handlers.NewStaffHandler(staffService, authz)
	animalHandler := handlers.NewAnimalHandler(animalService, authz)
	medicalRecordHandler := handlers.NewMedicalRecordHandler(medicalRecordService, authz)
	vaccinationHandler := handlers.NewVaccinationHandler(vaccinationService, authz)
	adoptionRequestHandler := handlers.NewAdoptionRequestHandler(adoptionRequestService, authz)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, authz)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public routes: login, signup, adoptable-animal search
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/users/signup", userHandler.Signup)
	v1.GET("/public/animals", animalHandler.SearchPublicAnimals)
	v1.POST("/organizations", orgHandler.CreateOrganization)

	// Authenticated routes
	authed := v1.Group("")
	authed.Use(authz.RequireAuth())
	{
		authed.GET("/auth/me", authHandler.Me)

		users := authed.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		organizations := authed.Group("/organizations")
		{
			organizations.GET("", orgHandler.ListOrganizations)
			organizations.GET("/:id", orgHandler.GetOrganization)
			organizations.PUT("/:id", orgHandler.UpdateOrganization)
			organizations.DELETE("/:id", orgHandler.DeleteOrganization)
		}

		// Tenant-scoped routes: role gate runs before tenant resolution,
		// so a wrong role never reaches a lookup.
		adminOnly := authed.Group("")
		adminOnly.Use(authz.RequireRoles(models.RoleOrgAdmin), authz.TenantContext())
		{
			adminOnly.POST("/shelters", shelterHandler.CreateShelter)
			adminOnly.PUT("/shelters/:id", shelterHandler.UpdateShelter)
			adminOnly.DELETE("/shelters/:id", shelterHandler.DeleteShelter)

			adminOnly.POST("/staff", staffHandler.AssignStaff)
			adminOnly.DELETE("/staff/:id", staffHandler.RemoveStaff)

			adminOnly.GET("/analytics", analyticsHandler.GetAnalytics)
		}

		orgStaff := authed.Group("")
		orgStaff.Use(authz.RequireRoles(models.RoleOrgAdmin, models.RoleStaff), authz.TenantContext())
		{
			orgStaff.GET("/shelters", shelterHandler.ListShelters)
			orgStaff.GET("/shelters/:id", shelterHandler.GetShelter)

			orgStaff.GET("/staff", staffHandler.ListStaff)
			orgStaff.GET("/staff/:id", staffHandler.GetStaff)

			animals := orgStaff.Group("/animals")
			{
				animals.GET("", animalHandler.ListAnimals)
				animals.POST("", animalHandler.CreateAnimal)
				animals.GET("/:id", animalHandler.GetAnimal)
				animals.PUT("/:id", animalHandler.UpdateAnimal)
				animals.DELETE("/:id", animalHandler.DeleteAnimal)
				animals.GET("/:id/medical-records", medicalRecordHandler.ListAnimalMedicalRecords)
				animals.GET("/:id/vaccinations", vaccinationHandler.ListAnimalVaccinations)
			}

			medicalRecords := orgStaff.Group("/medical-records")
			{
				medicalRecords.GET("", medicalRecordHandler.ListMedicalRecords)
				medicalRecords.POST("", medicalRecordHandler.CreateMedicalRecord)
				medicalRecords.GET("/:id", medicalRecordHandler.GetMedicalRecord)
				medicalRecords.PUT("/:id", medicalRecordHandler.UpdateMedicalRecord)
				medicalRecords.DELETE("/:id", medicalRecordHandler.DeleteMedicalRecord)
			}

			vaccinations := orgStaff.Group("/vaccinations")
			{
				vaccinations.GET("", vaccinationHandler.ListVaccinations)
				vaccinations.POST("", vaccinationHandler.CreateVaccination)
				vaccinations.GET("/:id", vaccinationHandler.GetVaccination)
				vaccinations.PUT("/:id", vaccinationHandler.UpdateVaccination)
				vaccinations.DELETE("/:id", vaccinationHandler.DeleteVaccination)
			}

			orgStaff.GET("/adoption-requests", adoptionRequestHandler.ListAdoptionRequests)
			orgStaff.GET("/adoption-requests/:id", adoptionRequestHandler.GetAdoptionRequest)
			orgStaff.PUT("/adoption-requests/:id/decision", adoptionRequestHandler.DecideAdoptionRequest)
		}

		adopters := authed.Group("")
		adopters.Use(authz.RequireRoles(models.RoleAdopter))
		{
			adopters.POST("/adoption-requests", adoptionRequestHandler.SubmitAdoptionRequest)
			adopters.GET("/adoption-requests/mine", adoptionRequestHandler.ListOwnAdoptionRequests)
			adopters.GET("/adoption-requests/mine/:id", adoptionRequestHandler.GetOwnAdoptionRequest)
		}
	}

	return router, nil
}
