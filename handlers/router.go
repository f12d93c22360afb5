package handlers

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	cors "github.com/itsjamie/gin-cors"
)

func SetupRouter(svr *Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	if svr.Config != nil && svr.Config.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(requestid.New())
	router.Use(svr.Trace())
	router.Use(cors.Middleware(cors.Config{
		Origins:         "*",
		Methods:         "GET, PUT, POST, DELETE, HEAD, PATCH",
		RequestHeaders:  "Origin, Authorization, Content-Type, Content-Length",
		ExposedHeaders:  "Correlation-Id",
		MaxAge:          12 * time.Hour,
		Credentials:     false,
		ValidateHeaders: false,
	}))
	router.Use(svr.AuthGate())

	router.GET("/login", svr.LoginPage)
	router.POST("/login", svr.Login)
	router.GET("/logout", svr.Logout)
	router.GET("/index", svr.Index)

	public := router.Group("/public")
	{
		public.POST("/customers", svr.CreateCustomer)
		public.GET("/courses", svr.ListCourses)
		public.POST("/forgot-password", svr.ForgotPassword)
		public.GET("/reset-password", svr.ValidateResetToken)
		public.POST("/reset-password", svr.ResetPasswordSubmit)
	}

	customers := router.Group("/customers")
	{
		customers.GET("/profile", svr.Profile)
		customers.PUT("/profile", svr.UpdateProfile)
		customers.GET("/registrations", svr.ListRegistrations)
		customers.POST("/courses/:id/register", svr.RegisterCourse)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/customers", svr.AdminListCustomers)
		admin.POST("/courses", svr.CreateCourse)
		admin.PUT("/courses/:id", svr.UpdateCourse)
		admin.DELETE("/courses/:id", svr.DeleteCourse)
	}

	return router
}
