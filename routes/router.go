package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seerwright/daggle/controllers"
	"github.com/seerwright/daggle/middlewares"
	"github.com/seerwright/daggle/models"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := r.Group("/api/v1")
	{
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", controllers.Register)
			authRoutes.POST("/login", controllers.Login)
		}

		profileRoutes := apiV1.Group("/profile")
		profileRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			profileRoutes.GET("", controllers.GetProfile)
			profileRoutes.PUT("", controllers.UpdateProfile)
			// Lives here rather than under /competitions/mine: gin's route
			// tree rejects a static segment beside the :slug wildcard.
			profileRoutes.GET("/competitions", middlewares.RoleAuthMiddleware(models.RoleSponsor), controllers.ListMyCompetitions)
		}

		competitionRoutes := apiV1.Group("/competitions")
		{
			// Public surface
			competitionRoutes.GET("", controllers.ListCompetitions)
			competitionRoutes.GET("/:slug", middlewares.JWTTryAuthMiddleware(), controllers.GetCompetition)
			competitionRoutes.GET("/:slug/rules/display", controllers.GetCompetitionRulesDisplay)
			competitionRoutes.GET("/:slug/faqs", controllers.ListFAQs)
			competitionRoutes.GET("/:slug/leaderboard", controllers.GetLeaderboard)

			// Sponsor management
			sponsor := competitionRoutes.Group("")
			sponsor.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleSponsor))
			{
				sponsor.POST("", controllers.CreateCompetition)
				sponsor.PATCH("/:slug", controllers.UpdateCompetition)
				sponsor.DELETE("/:slug", controllers.DeleteCompetition)
				sponsor.POST("/:slug/thumbnail", controllers.UploadThumbnail)
				sponsor.POST("/:slug/files", controllers.UploadDataFile)
				sponsor.POST("/:slug/truth-set", controllers.UploadTruthSet)
				sponsor.POST("/:slug/rules", controllers.SetCompetitionRules)
				sponsor.POST("/:slug/faqs", controllers.CreateFAQ)
				sponsor.PATCH("/:slug/faqs/:faq_id", controllers.UpdateFAQ)
				sponsor.DELETE("/:slug/faqs/:faq_id", controllers.DeleteFAQ)
				sponsor.POST("/:slug/faqs/reorder", controllers.ReorderFAQs)
			}

			// Participant surface
			authed := competitionRoutes.Group("")
			authed.Use(middlewares.JWTAuthMiddleware())
			{
				authed.GET("/:slug/rules", controllers.GetCompetitionRules)
				authed.POST("/:slug/enroll", controllers.Enroll)
				authed.GET("/:slug/enrollment", controllers.GetEnrollment)
				authed.DELETE("/:slug/enroll", controllers.Withdraw)
				authed.POST("/:slug/submissions", controllers.SubmitPredictions)
				authed.GET("/:slug/submissions/mine", controllers.ListMySubmissions)
			}
		}

		ruleRoutes := apiV1.Group("/rules")
		{
			ruleRoutes.GET("/templates", controllers.ListRuleTemplates)
		}

		uploadRoutes := apiV1.Group("/uploads")
		{
			uploadRoutes.GET("/*filepath", controllers.ServeUpload)
		}
	}

	return r
}
