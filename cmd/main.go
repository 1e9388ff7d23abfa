package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aquispel/burnout-api/config"
	"github.com/aquispel/burnout-api/database"
	adminctrl "github.com/aquispel/burnout-api/internal/controller/admin"
	userctrl "github.com/aquispel/burnout-api/internal/controller/user"
	"github.com/aquispel/burnout-api/internal/logger"
	"github.com/aquispel/burnout-api/internal/middleware"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/aquispel/burnout-api/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Burnout Check API
// @version 1.0
// @description Survey-taking backend: users answer the burnout questionnaire, an external ML model predicts the outcome and matching recommendations are assigned.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewTestRepository,
			repository.NewResponseRepository,
			repository.NewResultRepository,
			repository.NewRecommendationRepository,
		),

		fx.Provide(
			service.NewMLClient,
			service.NewAuthService,
			service.NewUserService,
			service.NewQuestionService,
			service.NewRecommendationService,
			service.NewTestService,
			service.NewCompletionService,
		),

		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewUserController,
			userctrl.NewTestController,
			userctrl.NewCatalogController,
			adminctrl.NewQuestionController,
			adminctrl.NewRecommendationController,
			adminctrl.NewUserAdminController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	registerCustomValidators()

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("request_id", param.Request.Header.Get(middleware.HeaderRequestID)).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// registerCustomValidators adds the "sino" rule used by the demographics
// payload: practicasprepro only accepts "Sí" or "No".
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("sino", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "Sí" || value == "No"
		})
	}
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authCtrl *userctrl.AuthController,
	userCtrl *userctrl.UserController,
	testCtrl *userctrl.TestController,
	catalogCtrl *userctrl.CatalogController,
	questionAdminCtrl *adminctrl.QuestionController,
	recommendationAdminCtrl *adminctrl.RecommendationController,
	userAdminCtrl *adminctrl.UserAdminController,
) {
	authRequired := middleware.Auth(cfg, userRepo)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)

		usersGroup := api.Group("/users", authRequired)
		usersGroup.GET("/me", userCtrl.GetMyProfile)
		usersGroup.PATCH("/me", userCtrl.UpdateMyProfile)
		usersGroup.POST("/me/change-password", userCtrl.ChangeMyPassword)

		questionsGroup := api.Group("/questions", authRequired)
		questionsGroup.GET("", catalogCtrl.ListActiveQuestions)

		testsGroup := api.Group("/tests", authRequired)
		testsGroup.POST("/start", testCtrl.StartTest)
		testsGroup.GET("/me", testCtrl.GetMyTests)
		testsGroup.GET("/:test_id", testCtrl.GetTestDetail)
		testsGroup.DELETE("/:test_id", testCtrl.DeleteTest)
		testsGroup.POST("/:test_id/responses", testCtrl.SubmitResponse)
		testsGroup.POST("/:test_id/responses/batch", testCtrl.SubmitResponsesBatch)
		testsGroup.POST("/:test_id/complete", testCtrl.CompleteTest)
		testsGroup.GET("/:test_id/result", testCtrl.GetTestResult)

		adminGroup := api.Group("/admin", authRequired, middleware.RequireAdmin())
		{
			adminGroup.POST("/questions", questionAdminCtrl.CreateQuestion)
			adminGroup.GET("/questions", questionAdminCtrl.ListQuestions)
			adminGroup.GET("/questions/:question_id", questionAdminCtrl.GetQuestion)
			adminGroup.PUT("/questions/:question_id", questionAdminCtrl.UpdateQuestion)
			adminGroup.DELETE("/questions/:question_id", questionAdminCtrl.DeleteQuestion)

			adminGroup.POST("/recommendations", recommendationAdminCtrl.CreateRecommendation)
			adminGroup.GET("/recommendations", recommendationAdminCtrl.ListRecommendations)
			adminGroup.GET("/recommendations/:recommendation_id", recommendationAdminCtrl.GetRecommendation)
			adminGroup.PUT("/recommendations/:recommendation_id", recommendationAdminCtrl.UpdateRecommendation)
			adminGroup.DELETE("/recommendations/:recommendation_id", recommendationAdminCtrl.DeleteRecommendation)

			adminGroup.GET("/users", userAdminCtrl.ListUsers)
			adminGroup.POST("/users/:user_id/activate", userAdminCtrl.ActivateUser)
			adminGroup.POST("/users/:user_id/deactivate", userAdminCtrl.DeactivateUser)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Burnout Check API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Test{},
		&model.TestResponse{},
		&model.TestResult{},
		&model.Recommendation{},
		&model.TestRecommendation{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully")
	return nil
}
