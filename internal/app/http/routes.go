package routes

import (
	adminapi "resale-app/internal/api/admin"
	articlesapi "resale-app/internal/api/articles"
	authapi "resale-app/internal/api/auth"
	familyapi "resale-app/internal/api/family"
	lotsapi "resale-app/internal/api/lots"
	plannerapi "resale-app/internal/api/planner"
	"resale-app/internal/api/users"
	"resale-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Input sanitization on public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/family", familyapi.ListMembers)
	auth.POST("/family", familyapi.CreateMember)
	auth.PUT("/family/:id", familyapi.UpdateMember)
	auth.DELETE("/family/:id", familyapi.DeleteMember)

	auth.GET("/articles", articlesapi.ListArticles)
	auth.POST("/articles", articlesapi.CreateArticle)
	auth.GET("/articles/:id", articlesapi.GetArticleByID)
	auth.PUT("/articles/:id", articlesapi.UpdateArticle)
	auth.DELETE("/articles/:id", articlesapi.DeleteArticle)

	auth.GET("/lots", lotsapi.ListLots)
	auth.POST("/lots", lotsapi.CreateLot)
	auth.GET("/lots/:id", lotsapi.GetLotByID)
	auth.PUT("/lots/:id", lotsapi.UpdateLot)
	auth.DELETE("/lots/:id", lotsapi.DeleteLot)
	auth.POST("/lots/:id/status", lotsapi.UpdateLotStatus)

	auth.GET("/planner/suggestions", plannerapi.ListSuggestions)
	auth.POST("/planner/suggestions/:id/accept", plannerapi.AcceptSuggestion)
	auth.POST("/planner/suggestions/:id/reject", plannerapi.RejectSuggestion)
	auth.POST("/planner/suggestions/generate", plannerapi.GenerateSuggestions)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
}
