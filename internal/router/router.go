package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/rakib-hossain32/doha-popular/docs"
	"github.com/rakib-hossain32/doha-popular/internal/config"
	"github.com/rakib-hossain32/doha-popular/internal/middleware"
	"github.com/rakib-hossain32/doha-popular/internal/modules/handler"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
	"github.com/rakib-hossain32/doha-popular/internal/telemetry"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config      *config.Config
	Log         *zap.Logger
	Metrics     *middleware.HTTPMetrics
	RateLimiter *middleware.IPRateLimiter
	Auth        service.AuthService

	HealthHandler      *handler.HealthHandler
	ProjectHandler     *handler.ProjectHandler
	TeamHandler        *handler.TeamHandler
	TestimonialHandler *handler.TestimonialHandler
	CareerHandler      *handler.CareerHandler
	ContactHandler     *handler.ContactHandler
	SettingsHandler    *handler.SettingsHandler
	SeedHandler        *handler.SeedHandler
	AuthHandler        *handler.AuthHandler
	AdminPageHandler   *handler.AdminPageHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	if telemetry.Enabled(d.Config) {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.SetHTMLTemplate(handler.AdminTemplates())

	// health
	r.GET("/health", d.HealthHandler.Health)

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cookie := d.Config.Admin.CookieName
	adminAPI := middleware.AdminAPI(d.Auth, cookie)
	intake := middleware.RateLimit(d.RateLimiter)

	api := r.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		auth := api.Group("/auth")
		{
			auth.POST("/login", intake, d.AuthHandler.Login)
			auth.POST("/logout", d.AuthHandler.Logout)
			auth.GET("/session", d.AuthHandler.Session)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", adminAPI, d.ProjectHandler.CreateProject)
			projects.PUT("", adminAPI, d.ProjectHandler.UpdateProject)
			projects.PUT("/:id", adminAPI, d.ProjectHandler.UpdateProject)
			projects.DELETE("", adminAPI, d.ProjectHandler.DeleteProject)
			projects.DELETE("/:id", adminAPI, d.ProjectHandler.DeleteProject)
		}

		team := api.Group("/team")
		{
			team.GET("", d.TeamHandler.ListTeam)
			team.POST("", adminAPI, d.TeamHandler.CreateTeamMember)
			team.PUT("", adminAPI, d.TeamHandler.UpdateTeamMember)
			team.PUT("/:id", adminAPI, d.TeamHandler.UpdateTeamMember)
			team.DELETE("", adminAPI, d.TeamHandler.DeleteTeamMember)
			team.DELETE("/:id", adminAPI, d.TeamHandler.DeleteTeamMember)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", d.TestimonialHandler.ListTestimonials)
			testimonials.POST("", intake, d.TestimonialHandler.CreateTestimonial)
			testimonials.PATCH("", adminAPI, d.TestimonialHandler.SetTestimonialStatus)
			testimonials.PATCH("/:id", adminAPI, d.TestimonialHandler.SetTestimonialStatus)
			testimonials.DELETE("", adminAPI, d.TestimonialHandler.DeleteTestimonial)
			testimonials.DELETE("/:id", adminAPI, d.TestimonialHandler.DeleteTestimonial)
		}

		careers := api.Group("/careers")
		{
			careers.POST("", intake, d.CareerHandler.SubmitApplication)
			careers.GET("", adminAPI, d.CareerHandler.ListApplications)
			careers.DELETE("", adminAPI, d.CareerHandler.DeleteApplication)
			careers.DELETE("/:id", adminAPI, d.CareerHandler.DeleteApplication)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", intake, d.ContactHandler.SubmitInquiry)
			contact.GET("", adminAPI, d.ContactHandler.ListInquiries)
			contact.DELETE("", adminAPI, d.ContactHandler.DeleteInquiry)
			contact.DELETE("/:id", adminAPI, d.ContactHandler.DeleteInquiry)
		}

		api.GET("/settings", d.SettingsHandler.GetSettings)
		api.POST("/settings", adminAPI, d.SettingsHandler.SaveSettings)

		api.POST("/seed", adminAPI, d.SeedHandler.ReseedProjects)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/login", d.AdminPageHandler.LoginPage)
		admin.POST("/login", intake, d.AdminPageHandler.LoginSubmit)
		admin.POST("/logout", d.AdminPageHandler.LogoutSubmit)

		pages := admin.Group("", middleware.AdminPage(d.Auth, cookie))
		{
			pages.GET("", d.AdminPageHandler.Dashboard)
			pages.GET("/:section", d.AdminPageHandler.Dashboard)
			pages.GET("/:section/*rest", d.AdminPageHandler.Dashboard)
		}
	}
	return r
}
