package api

import (
	"net/http"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/metrics"
	"zim/gym-app/internal/service"
	"zim/gym-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupRoutes mounts every endpoint on the router.
//
// Route policy mirrors the navigation guard: the owner area requires the
// client role, the admin area the admin role, and the customer portal
// accepts customers. Owners keep read access to the portal endpoints so
// the same handlers serve both audiences.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	rosterService service.RosterService,
	attendanceService service.AttendanceService,
	adminService service.AdminService,
	fileStorage storage.FileStorage,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
	authLimiter *RateLimiter,
) {
	authHandler := NewAuthHandler(authService, fileStorage, collector)
	guardHandler := NewGuardHandler(authService, collector)
	memberHandler := NewMemberHandler(rosterService)
	trainerHandler := NewTrainerHandler(rosterService)
	membershipHandler := NewMembershipHandler(rosterService)
	attendanceHandler := NewAttendanceHandler(attendanceService, collector)
	reportHandler := NewReportHandler(rosterService, attendanceService)
	adminHandler := NewAdminHandler(adminService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		authGroup.Use(authLimiter.Middleware())
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/signup", authHandler.Signup)
		}

		// The guard must answer before a session exists, so it stays public.
		apiV1.GET("/navigate", guardHandler.Navigate)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)
		if fileStorage != nil {
			protected.POST("/auth/avatar/upload-url", authHandler.RequestAvatarUpload)
			protected.GET("/auth/avatar/url", authHandler.GetAvatarURL)
		}

		// --- Owner area ---
		ownerOnly := RoleMiddleware(domain.RoleClient)

		memberGroup := protected.Group("/members")
		memberGroup.Use(ownerOnly)
		{
			memberGroup.POST("", memberHandler.Create)
			memberGroup.GET("", memberHandler.List)
			memberGroup.GET("/:id", memberHandler.Get)
			memberGroup.PUT("/:id", memberHandler.Update)
			memberGroup.DELETE("/:id", memberHandler.Delete)
			memberGroup.POST("/:id/trainer", memberHandler.AssignTrainer)
			memberGroup.DELETE("/:id/trainer", memberHandler.UnassignTrainer)
		}

		trainerGroup := protected.Group("/trainers")
		trainerGroup.Use(ownerOnly)
		{
			trainerGroup.POST("", trainerHandler.Create)
			trainerGroup.GET("", trainerHandler.List)
			trainerGroup.GET("/:id", trainerHandler.Get)
			trainerGroup.PUT("/:id", trainerHandler.Update)
			trainerGroup.DELETE("/:id", trainerHandler.Delete)
		}

		membershipGroup := protected.Group("/memberships")
		membershipGroup.Use(ownerOnly)
		{
			membershipGroup.POST("", membershipHandler.Create)
			membershipGroup.GET("", membershipHandler.List)
			membershipGroup.GET("/:id", membershipHandler.Get)
			membershipGroup.PUT("/:id", membershipHandler.Update)
			membershipGroup.DELETE("/:id", membershipHandler.Delete)
		}

		attendanceGroup := protected.Group("/attendance")
		attendanceGroup.Use(ownerOnly)
		{
			attendanceGroup.POST("/check-in", attendanceHandler.CheckIn)
			attendanceGroup.POST("/check-out", attendanceHandler.CheckOut)
			attendanceGroup.GET("", attendanceHandler.List)
		}

		protected.GET("/dashboard", ownerOnly, reportHandler.Dashboard)
		protected.GET("/due-dates", ownerOnly, reportHandler.DueDates)

		// --- Admin area ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.POST("/gym-owners", adminHandler.Create)
			adminGroup.GET("/gym-owners", adminHandler.List)
			adminGroup.GET("/gym-owners/:id", adminHandler.Get)
			adminGroup.PUT("/gym-owners/:id", adminHandler.Update)
			adminGroup.DELETE("/gym-owners/:id", adminHandler.Delete)
			adminGroup.GET("/stats", adminHandler.Stats)
		}

		// --- Customer portal ---
		customerGroup := protected.Group("/customer")
		customerGroup.Use(RoleMiddleware(domain.RoleCustomer, domain.RoleClient))
		{
			customerGroup.GET("/profile", reportHandler.CustomerProfile)
			customerGroup.GET("/attendance", reportHandler.CustomerAttendance)
		}
	}
}
